package eventsapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"publisher-app/database"
	"publisher-app/internal/domain/events"

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
	r.GET("/events", ListPublishedEvents)
	r.GET("/admin/events", ListEvents)
	r.POST("/admin/events", CreateEvent)
	r.PUT("/admin/events/:id", UpdateEvent)
	r.DELETE("/admin/events/:id", DeleteEvent)
	r.POST("/admin/events/:id/toggle-publish", TogglePublish)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func eventPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Peluncuran Buku Menuju Fajar",
		"description": "Bedah buku bersama penulis",
		"event_date":  "2026-09-12",
		"location":    "Perpustakaan Nasional, Jakarta",
	}
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	r := setupTest(t)

	for _, bad := range []string{"12-09-2026", "2026/09/12", "2026-13-40", "besok"} {
		payload := eventPayload()
		payload["event_date"] = bad
		w := doJSON(r, "POST", "/admin/events", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "event_date %q", bad)
	}

	var count int64
	assert.NoError(t, database.DB.Model(&events.Event{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateBlankOptionalsStoredAsNull(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/events", map[string]interface{}{
		"title":      "Rapat umum tahunan",
		"event_date": "2026-03-01",
		"location":   "   ",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var ev events.Event
	assert.NoError(t, database.DB.First(&ev).Error)
	assert.Nil(t, ev.Description)
	assert.Nil(t, ev.Location)
	assert.Nil(t, ev.ImageURL)
}

func TestPublishGatesPublicListing(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/events", eventPayload())
	assert.Equal(t, http.StatusCreated, w.Code)
	var created events.Event
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	var list struct {
		Events []events.Event `json:"events"`
	}
	w = doJSON(r, "GET", "/events", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Events)

	w = doJSON(r, "POST", "/admin/events/"+created.ID+"/toggle-publish", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/events", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Events, 1)
	assert.Equal(t, created.ID, list.Events[0].ID)
}

func TestPublicListNewestFirst(t *testing.T) {
	r := setupTest(t)

	for _, date := range []string{"2025-01-10", "2026-06-30", "2024-11-02"} {
		ev := events.Event{Title: "acara", EventDate: date, IsPublished: true}
		assert.NoError(t, database.DB.Create(&ev).Error)
	}

	var list struct {
		Events []events.Event `json:"events"`
	}
	w := doJSON(r, "GET", "/events", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Events, 3)
	assert.Equal(t, "2026-06-30", list.Events[0].EventDate)
	assert.Equal(t, "2024-11-02", list.Events[2].EventDate)
}

func TestUpdateValidatesDateAndKeepsPublishState(t *testing.T) {
	r := setupTest(t)

	ev := events.Event{Title: "acara", EventDate: "2026-01-01", IsPublished: true}
	assert.NoError(t, database.DB.Create(&ev).Error)

	payload := eventPayload()
	payload["event_date"] = "tanggal salah"
	w := doJSON(r, "PUT", "/admin/events/"+ev.ID, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload["event_date"] = "2026-02-02"
	w = doJSON(r, "PUT", "/admin/events/"+ev.ID, payload)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated events.Event
	assert.NoError(t, database.DB.First(&updated, "id = ?", ev.ID).Error)
	assert.Equal(t, "2026-02-02", updated.EventDate)
	assert.True(t, updated.IsPublished)
}

func TestDeleteUnknownEvent(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "DELETE", "/admin/events/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
