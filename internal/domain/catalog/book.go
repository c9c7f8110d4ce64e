package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title         string   `gorm:"not null" json:"title"`
	Author        string   `gorm:"not null" json:"author"`
	Description   *string  `json:"description,omitempty"`
	ISBN          *string  `json:"isbn,omitempty"`
	YearPublished *int     `json:"year_published,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Pages         *int     `json:"pages,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	CoverImageURL *string  `gorm:"column:cover_image_url" json:"cover_image_url,omitempty"`

	IsPublished bool  `gorm:"not null;default:false;index" json:"is_published"`
	CreatedBy   *uint `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the UUID in Go rather than relying on a database
// default, so the model behaves the same under postgres and the sqlite
// test driver.
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
