package books

import "strings"

type BookRequest struct {
	Title         string   `json:"title" binding:"required"`
	Author        string   `json:"author" binding:"required"`
	Description   string   `json:"description"`
	ISBN          string   `json:"isbn"`
	YearPublished *int     `json:"year_published"`
	Category      string   `json:"category"`
	Pages         *int     `json:"pages"`
	Price         *float64 `json:"price"`
	CoverImageURL string   `json:"cover_image_url"`
	IsPublished   bool     `json:"is_published"`
}

// optional converts a blank form string into an absent value so empty
// strings never reach the database.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
