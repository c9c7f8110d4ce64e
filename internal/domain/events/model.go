package events

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description,omitempty"`
	// Calendar date (YYYY-MM-DD), not a timestamp. Stored as text so the
	// value round-trips unchanged and still sorts chronologically.
	EventDate string  `gorm:"column:event_date;not null;index" json:"event_date"`
	Location  *string `json:"location,omitempty"`
	ImageURL  *string `gorm:"column:image_url" json:"image_url,omitempty"`

	IsPublished bool `gorm:"not null;default:false;index" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
