package articles

import (
	"net/http"
	"time"

	"publisher-app/database"
	"publisher-app/internal/domain/blog"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Article bodies are stored as HTML, so they bypass the strict input
// middleware and get scrubbed here instead.
var contentPolicy = bluemonday.UGCPolicy()

// ------------------------------
// GET /articles  (public, published only)
// ------------------------------
func ListPublishedArticles(c *gin.Context) {
	var articles []blog.Article
	err := database.DB.
		Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&articles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GET /articles/:slug (public)
func GetPublishedArticle(c *gin.Context) {
	var article blog.Article
	err := database.DB.
		Where("slug = ? AND is_published = ?", c.Param("slug"), true).
		First(&article).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// ------------------------------
// Admin CRUD
// ------------------------------
func ListArticles(c *gin.Context) {
	var articles []blog.Article
	if err := database.DB.Order("created_at DESC").Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The slug is derived from the title only while the article has no
	// identity yet. After that it is an independently editable field.
	slug := req.Slug
	if slug == "" {
		slug = blog.Slugify(req.Title)
	}

	article := blog.Article{
		Title:         req.Title,
		Slug:          slug,
		Excerpt:       optional(req.Excerpt),
		Content:       contentPolicy.Sanitize(req.Content),
		CoverImageURL: optional(req.CoverImageURL),
		Author:        req.Author,
		Category:      optional(req.Category),
		IsPublished:   req.IsPublished,
	}
	if req.IsPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := database.DB.Create(&article).Error; err != nil {
		// The unique index on slug is the only slug validation; an empty
		// or duplicate slug fails here.
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already exists or is invalid"})
		return
	}
	c.JSON(http.StatusCreated, article)
}

func UpdateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var article blog.Article
	if err := database.DB.First(&article, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	// Never regenerate the slug from the title on edit; take whatever the
	// form sent (falling back to the stored value).
	slug := req.Slug
	if slug == "" {
		slug = article.Slug
	}

	updates := map[string]interface{}{
		"title":           req.Title,
		"slug":            slug,
		"excerpt":         optional(req.Excerpt),
		"content":         contentPolicy.Sanitize(req.Content),
		"cover_image_url": optional(req.CoverImageURL),
		"author":          req.Author,
		"category":        optional(req.Category),
		"is_published":    req.IsPublished,
	}
	if req.IsPublished {
		if article.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	} else {
		updates["published_at"] = nil
	}

	if err := database.DB.Model(&article).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func DeleteArticle(c *gin.Context) {
	res := database.DB.Delete(&blog.Article{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

// POST /admin/articles/:id/toggle-publish
//
// published_at is set exactly when is_published flips to true and cleared
// when it flips back to false.
func TogglePublish(c *gin.Context) {
	var article blog.Article
	if err := database.DB.First(&article, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	article.IsPublished = !article.IsPublished
	updates := map[string]interface{}{"is_published": article.IsPublished}
	if article.IsPublished {
		now := time.Now()
		article.PublishedAt = &now
		updates["published_at"] = now
	} else {
		article.PublishedAt = nil
		updates["published_at"] = nil
	}

	if err := database.DB.Model(&article).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}
	c.JSON(http.StatusOK, article)
}
