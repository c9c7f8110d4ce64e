package contact

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is write-only from this service's perspective: the relay inserts
// rows, nothing here reads them back.
type Message struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string  `gorm:"not null" json:"name"`
	Email   string  `gorm:"not null" json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `gorm:"not null" json:"subject"`
	Message string  `gorm:"type:text;not null" json:"message"`
	IsRead  bool    `gorm:"not null;default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *Message) TableName() string { return "contact_messages" }

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
