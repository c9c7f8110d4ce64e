package books

import (
	"net/http"

	"publisher-app/database"
	"publisher-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /books  (public, published only)
// ------------------------------
func ListPublishedBooks(c *gin.Context) {
	var books []catalog.Book
	err := database.DB.
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&books).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load books"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}

// GET /books/:id (public; drafts are invisible here)
func GetPublishedBook(c *gin.Context) {
	var book catalog.Book
	err := database.DB.
		Where("id = ? AND is_published = ?", c.Param("id"), true).
		First(&book).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load book"})
		return
	}
	c.JSON(http.StatusOK, book)
}

// ------------------------------
// Admin CRUD
// ------------------------------
func ListBooks(c *gin.Context) {
	var books []catalog.Book
	if err := database.DB.Order("created_at DESC").Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load books"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}

func CreateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	var createdBy *uint
	if userID != 0 {
		createdBy = &userID
	}

	book := catalog.Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   optional(req.Description),
		ISBN:          optional(req.ISBN),
		YearPublished: req.YearPublished,
		Category:      optional(req.Category),
		Pages:         req.Pages,
		Price:         req.Price,
		CoverImageURL: optional(req.CoverImageURL),
		IsPublished:   req.IsPublished,
		CreatedBy:     createdBy,
	}

	if err := database.DB.Create(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		return
	}
	c.JSON(http.StatusCreated, book)
}

func UpdateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var book catalog.Book
	if err := database.DB.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load book"})
		return
	}

	// Map update so cleared optional fields become NULL instead of being
	// skipped. Publish state is owned by the toggle endpoint.
	updates := map[string]interface{}{
		"title":           req.Title,
		"author":          req.Author,
		"description":     optional(req.Description),
		"isbn":            optional(req.ISBN),
		"year_published":  req.YearPublished,
		"category":        optional(req.Category),
		"pages":           req.Pages,
		"price":           req.Price,
		"cover_image_url": optional(req.CoverImageURL),
	}

	if err := database.DB.Model(&book).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func DeleteBook(c *gin.Context) {
	res := database.DB.Delete(&catalog.Book{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
}

// POST /admin/books/:id/toggle-publish
func TogglePublish(c *gin.Context) {
	var book catalog.Book
	if err := database.DB.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load book"})
		return
	}

	book.IsPublished = !book.IsPublished
	if err := database.DB.Model(&book).Update("is_published", book.IsPublished).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}
	c.JSON(http.StatusOK, book)
}
