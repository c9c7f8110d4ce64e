package articles

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"publisher-app/database"
	"publisher-app/internal/domain/blog"

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
	r.GET("/articles", ListPublishedArticles)
	r.GET("/articles/:slug", GetPublishedArticle)
	r.GET("/admin/articles", ListArticles)
	r.POST("/admin/articles", CreateArticle)
	r.PUT("/admin/articles/:id", UpdateArticle)
	r.DELETE("/admin/articles/:id", DeleteArticle)
	r.POST("/admin/articles/:id/toggle-publish", TogglePublish)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func articlePayload(overrides map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"title":   "Menuju Fajar, 2024!",
		"content": "<p>Isi artikel</p>",
		"author":  "Tim Redaksi",
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	var created blog.Article
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "menuju-fajar-2024", created.Slug)
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(map[string]interface{}{
		"slug": "custom-slug",
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	var created blog.Article
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "custom-slug", created.Slug)
}

func TestSlugNeverRegeneratedOnUpdate(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(nil))
	var created blog.Article
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Retitle without sending a slug: the stored slug survives.
	w = doJSON(r, "PUT", "/admin/articles/"+created.ID, articlePayload(map[string]interface{}{
		"title": "Judul Yang Benar-Benar Baru",
	}))
	assert.Equal(t, http.StatusOK, w.Code)

	var article blog.Article
	assert.NoError(t, database.DB.First(&article, "id = ?", created.ID).Error)
	assert.Equal(t, "menuju-fajar-2024", article.Slug)
	assert.Equal(t, "Judul Yang Benar-Benar Baru", article.Title)

	// An explicitly edited slug is taken verbatim.
	w = doJSON(r, "PUT", "/admin/articles/"+created.ID, articlePayload(map[string]interface{}{
		"slug": "slug-pilihan-editor",
	}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, database.DB.First(&article, "id = ?", created.ID).Error)
	assert.Equal(t, "slug-pilihan-editor", article.Slug)
}

func TestDuplicateSlugRejected(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "POST", "/admin/articles", articlePayload(nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTogglePublishTracksPublishedAt(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(nil))
	var created blog.Article
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.IsPublished)
	assert.Nil(t, created.PublishedAt)

	w = doJSON(r, "POST", "/admin/articles/"+created.ID+"/toggle-publish", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var article blog.Article
	assert.NoError(t, database.DB.First(&article, "id = ?", created.ID).Error)
	assert.True(t, article.IsPublished)
	assert.NotNil(t, article.PublishedAt)

	w = doJSON(r, "POST", "/admin/articles/"+created.ID+"/toggle-publish", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// GORM leaves NULL columns untouched when scanning into a reused
	// struct, so read into a zeroed value.
	article = blog.Article{}
	assert.NoError(t, database.DB.First(&article, "id = ?", created.ID).Error)
	assert.False(t, article.IsPublished)
	assert.Nil(t, article.PublishedAt)
}

func TestCreatePublishedSetsPublishedAt(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(map[string]interface{}{
		"is_published": true,
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	var created blog.Article
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.IsPublished)
	assert.NotNil(t, created.PublishedAt)
}

func TestPublicEndpointsExcludeDrafts(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(nil))
	var created blog.Article
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, "GET", "/articles/"+created.Slug, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var list struct {
		Articles []blog.Article `json:"articles"`
	}
	w = doJSON(r, "GET", "/articles", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Articles, 0)

	doJSON(r, "POST", "/admin/articles/"+created.ID+"/toggle-publish", nil)

	w = doJSON(r, "GET", "/articles/"+created.Slug, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlankOptionalFieldsStoredAsNull(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(map[string]interface{}{
		"excerpt":  "",
		"category": "",
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	var article blog.Article
	assert.NoError(t, database.DB.First(&article).Error)
	assert.Nil(t, article.Excerpt)
	assert.Nil(t, article.Category)
}

func TestContentIsSanitized(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, "POST", "/admin/articles", articlePayload(map[string]interface{}{
		"content": `<p>Aman</p><script>alert("x")</script>`,
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	var article blog.Article
	assert.NoError(t, database.DB.First(&article).Error)
	assert.Contains(t, article.Content, "<p>Aman</p>")
	assert.NotContains(t, article.Content, "<script>")
}
