package blog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title         string  `gorm:"not null" json:"title"`
	Slug          string  `gorm:"not null;uniqueIndex:idx_articles_slug" json:"slug"`
	Excerpt       *string `json:"excerpt,omitempty"`
	Content       string  `gorm:"type:text;not null" json:"content"`
	CoverImageURL *string `gorm:"column:cover_image_url" json:"cover_image_url,omitempty"`
	Author        string  `gorm:"not null" json:"author"`
	Category      *string `json:"category,omitempty"`

	IsPublished bool       `gorm:"not null;default:false;index" json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
