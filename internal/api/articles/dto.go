package articles

import "strings"

type ArticleRequest struct {
	Title         string `json:"title" binding:"required"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content" binding:"required"`
	CoverImageURL string `json:"cover_image_url"`
	Author        string `json:"author" binding:"required"`
	Category      string `json:"category"`
	IsPublished   bool   `json:"is_published"`
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
