package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Milestone struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Year  string `gorm:"not null" json:"year"`
	Event string `gorm:"type:text;not null" json:"event"`
	// Values need not be contiguous; only relative order matters.
	SortOrder int `gorm:"not null;default:0;index" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// NextSortOrder returns the sort_order a newly appended milestone should
// receive: max(existing)+1, or 1 when the table is empty. Gaps and
// duplicates in existing values are irrelevant.
func NextSortOrder(db *gorm.DB) (int, error) {
	var max int
	err := db.Model(&Milestone{}).Select("COALESCE(MAX(sort_order), 0)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
