package milestones

import (
	"net/http"

	"publisher-app/database"
	"publisher-app/internal/domain/company"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MilestoneRequest struct {
	Year  string `json:"year" binding:"required"`
	Event string `json:"event" binding:"required"`
}

// GET /milestones (public)
func ListMilestones(c *gin.Context) {
	var list []company.Milestone
	if err := database.DB.Order("sort_order ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load milestones"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": list})
}

// POST /admin/milestones. New entries are appended after the current
// highest sort_order.
func CreateMilestone(c *gin.Context) {
	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next, err := company.NextSortOrder(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}

	m := company.Milestone{
		Year:      req.Year,
		Event:     req.Event,
		SortOrder: next,
	}
	if err := database.DB.Create(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// PUT /admin/milestones/:id updates year/event only; sort_order is fixed
// at insertion.
func UpdateMilestone(c *gin.Context) {
	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var m company.Milestone
	if err := database.DB.First(&m, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load milestone"})
		return
	}

	updates := map[string]interface{}{
		"year":  req.Year,
		"event": req.Event,
	}
	if err := database.DB.Model(&m).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func DeleteMilestone(c *gin.Context) {
	res := database.DB.Delete(&company.Milestone{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Milestone deleted"})
}
