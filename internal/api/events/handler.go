package eventsapi

import (
	"net/http"
	"strings"
	"time"

	"publisher-app/database"
	"publisher-app/internal/domain/events"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" binding:"required"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func validEventDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// GET /events (public, published only)
func ListPublishedEvents(c *gin.Context) {
	var list []events.Event
	err := database.DB.
		Where("is_published = ?", true).
		Order("event_date DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": list})
}

// ------------------------------
// Admin CRUD
// ------------------------------
func ListEvents(c *gin.Context) {
	var list []events.Event
	if err := database.DB.Order("event_date DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": list})
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validEventDate(req.EventDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
		return
	}

	event := events.Event{
		Title:       req.Title,
		Description: optional(req.Description),
		EventDate:   req.EventDate,
		Location:    optional(req.Location),
		ImageURL:    optional(req.ImageURL),
	}
	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func UpdateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validEventDate(req.EventDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
		return
	}

	var event events.Event
	if err := database.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": optional(req.Description),
		"event_date":  req.EventDate,
		"location":    optional(req.Location),
		"image_url":   optional(req.ImageURL),
	}
	if err := database.DB.Model(&event).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	res := database.DB.Delete(&events.Event{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// POST /admin/events/:id/toggle-publish
func TogglePublish(c *gin.Context) {
	var event events.Event
	if err := database.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return
	}

	event.IsPublished = !event.IsPublished
	if err := database.DB.Model(&event).Update("is_published", event.IsPublished).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, event)
}
