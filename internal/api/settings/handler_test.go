package settings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"publisher-app/database"
	"publisher-app/internal/domain/company"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	r := gin.New()
	r.GET("/site-stats", ListSiteStats)
	r.GET("/admin/site-settings", ListSettings)
	r.PUT("/admin/site-settings/:id", UpdateSetting)
	return r
}

func seedSettings(t *testing.T) []company.SiteSetting {
	t.Helper()
	rows := []company.SiteSetting{
		{Key: "stat_books_published", Label: "Buku Terbit", Value: "120"},
		{Key: "stat_years_active", Label: "Tahun Berkarya", Value: "15"},
		{Key: "contact_address", Label: "Alamat", Value: "Jakarta"},
	}
	for i := range rows {
		assert.NoError(t, database.DB.Create(&rows[i]).Error)
	}
	return rows
}

func TestSiteStatsOnlyStatRows(t *testing.T) {
	r := setupTest(t)
	seedSettings(t)

	req, _ := http.NewRequest(http.MethodGet, "/site-stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats []company.SiteSetting `json:"stats"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Stats, 2)
	assert.Equal(t, "stat_books_published", resp.Stats[0].Key)
	assert.Equal(t, "stat_years_active", resp.Stats[1].Key)
}

func TestUpdateSettingChangesValueOnly(t *testing.T) {
	r := setupTest(t)
	rows := seedSettings(t)

	body, _ := json.Marshal(map[string]string{"value": "130"})
	req, _ := http.NewRequest(http.MethodPut, "/admin/site-settings/"+rows[0].ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh company.SiteSetting
	assert.NoError(t, database.DB.First(&fresh, "id = ?", rows[0].ID).Error)
	assert.Equal(t, "130", fresh.Value)
	assert.Equal(t, "Buku Terbit", fresh.Label)
	assert.Equal(t, "stat_books_published", fresh.Key)
}

func TestUpdateUnknownSetting(t *testing.T) {
	r := setupTest(t)

	body, _ := json.Marshal(map[string]string{"value": "x"})
	req, _ := http.NewRequest(http.MethodPut, "/admin/site-settings/no-such-id", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
