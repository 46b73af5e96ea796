package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baladi/internal/models/db_models"
	"baladi/internal/repositories"
	"baladi/internal/services"
)

type noopNotifier struct{}

func (noopNotifier) Success(string) {}

func newCategoriesRouter(seed []db_models.Category) *gin.Engine {
	gin.SetMode(gin.TestMode)

	activity := services.NewActivityService(repositories.NewActivityRepository(nil))
	svc := services.NewCategoryService(repositories.NewCategoryRepository(seed), activity, noopNotifier{})
	cc := NewCategoriesController(svc)

	r := gin.New()
	group := r.Group("/categories")
	group.GET("", cc.List)
	group.POST("", cc.Create)
	group.PUT("/:id", cc.Update)
	group.DELETE("/:id", cc.Delete)
	group.POST("/:id/toggle-status", cc.ToggleStatus)
	group.POST("/selection/:id/toggle", cc.ToggleSelection)
	group.POST("/selection/toggle-all", cc.ToggleAll)
	group.POST("/bulk/delete", cc.BulkDelete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestCreateCategoryValidation(t *testing.T) {
	r := newCategoriesRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/categories", gin.H{"nameAr": "بدون اسم"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Invalid request payload", envelope["message"])
}

func TestCreateCategoryThenList(t *testing.T) {
	r := newCategoriesRouter([]db_models.Category{
		{ID: "cat_old", NameEn: "Old", Status: db_models.StatusActive},
	})

	w := doJSON(t, r, http.MethodPost, "/categories", gin.H{"nameEn": "News", "nameAr": "أخبار"})
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, "Category Created Successfully", envelope["message"])

	w = doJSON(t, r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope = decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "News", first["nameEn"])
}

func TestUpdateCategoryNotFound(t *testing.T) {
	r := newCategoriesRouter(nil)

	w := doJSON(t, r, http.MethodPut, "/categories/cat_ghost", gin.H{"nameEn": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Category not found", envelope["message"])
}

func TestToggleStatusEndpoint(t *testing.T) {
	r := newCategoriesRouter([]db_models.Category{
		{ID: "cat_1", NameEn: "News", Status: db_models.StatusActive},
	})

	w := doJSON(t, r, http.MethodPost, "/categories/cat_1/toggle-status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Category Inactivated", envelope["message"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "inactive", data["status"])
}

func TestBulkDeleteFlow(t *testing.T) {
	r := newCategoriesRouter([]db_models.Category{
		{ID: "cat_1", NameEn: "News", Status: db_models.StatusActive},
		{ID: "cat_2", NameEn: "Sports", Status: db_models.StatusActive},
	})

	// Nothing selected yet.
	w := doJSON(t, r, http.MethodPost, "/categories/bulk/delete", gin.H{"confirm": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No rows selected", decodeEnvelope(t, w)["message"])

	w = doJSON(t, r, http.MethodPost, "/categories/selection/toggle-all", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Selected but not confirmed.
	w = doJSON(t, r, http.MethodPost, "/categories/bulk/delete", gin.H{"confirm": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bulk delete requires confirmation", decodeEnvelope(t, w)["message"])

	w = doJSON(t, r, http.MethodPost, "/categories/bulk/delete", gin.H{"confirm": true})
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["removed"])

	w = doJSON(t, r, http.MethodGet, "/categories", nil)
	data = decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["totalCount"])
}
