package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSetting is a key/value row; the public site reads only the rows
// whose key carries the "stat_" prefix (headline statistics).
type SiteSetting struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Key   string `gorm:"not null;uniqueIndex:idx_site_settings_key" json:"key"`
	Value string `gorm:"not null" json:"value"`
	Label string `gorm:"not null" json:"label"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *SiteSetting) TableName() string { return "site_settings" }

func (s *SiteSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// StatPrefix gates which settings the public stats endpoint exposes.
const StatPrefix = "stat_"
