package settings

import (
	"net/http"

	"publisher-app/database"
	"publisher-app/internal/domain/company"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// GET /site-stats (public). Only the stat_* rows are site statistics.
func ListSiteStats(c *gin.Context) {
	var stats []company.SiteSetting
	err := database.DB.
		Where("key LIKE ?", company.StatPrefix+"%").
		Order("key ASC").
		Find(&stats).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GET /admin/site-settings
func ListSettings(c *gin.Context) {
	var list []company.SiteSetting
	err := database.DB.
		Where("key LIKE ?", company.StatPrefix+"%").
		Order("key ASC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": list})
}

// PUT /admin/site-settings/:id. The value is free text; key and label are
// fixed at seeding time.
func UpdateSetting(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var setting company.SiteSetting
	if err := database.DB.First(&setting, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load setting"})
		return
	}

	if err := database.DB.Model(&setting).Update("value", req.Value).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
		return
	}
	setting.Value = req.Value
	c.JSON(http.StatusOK, setting)
}
