package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/api/middleware"
	"github.com/padhaihub/padhai_go_server/internal/repository"
	"github.com/padhaihub/padhai_go_server/internal/service"
	"github.com/padhaihub/padhai_go_server/internal/testutil"
)

// testContext 本地测试上下文
type testContext struct {
	DB *gorm.DB
}

// mockAuth 模拟认证中间件
func mockAuth(userID int64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}

func setupMainCategoryHandler(t *testing.T) (*MainCategoryHandler, *testContext, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	categoryService := service.NewMainCategoryService(repository.NewMainCategoryRepository(db))
	h := NewMainCategoryHandler(categoryService)

	ctx := &testContext{DB: db}

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return h, ctx, cleanup
}

func TestMainCategoryHandler_Create_Success(t *testing.T) {
	h, _, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/admin/main-category", h.Create)

	req := httptest.NewRequest("POST", "/admin/main-category", jsonBody(t, gin.H{"title": "Class 11th"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "11", data["slug"])
}

func TestMainCategoryHandler_Create_Conflict(t *testing.T) {
	h, ctx, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	testutil.TestMainCategory(t, ctx.DB, "Class 11")

	router := gin.New()
	router.POST("/admin/main-category", h.Create)

	req := httptest.NewRequest("POST", "/admin/main-category", jsonBody(t, gin.H{"title": "CLASS-11-TH"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestMainCategoryHandler_Create_MissingTitle(t *testing.T) {
	h, _, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/admin/main-category", h.Create)

	req := httptest.NewRequest("POST", "/admin/main-category", jsonBody(t, gin.H{}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMainCategoryHandler_Get_NotFound(t *testing.T) {
	h, _, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/admin/main-category/:slug", h.Get)

	req := httptest.NewRequest("GET", "/admin/main-category/nonexistent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMainCategoryHandler_List_Pagination(t *testing.T) {
	h, ctx, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	testutil.TestMainCategory(t, ctx.DB, "Class 9")
	testutil.TestMainCategory(t, ctx.DB, "Class 10")
	testutil.TestMainCategory(t, ctx.DB, "Class 11")

	router := gin.New()
	router.GET("/admin/main-categories", h.List)

	req := httptest.NewRequest("GET", "/admin/main-categories?page=1&limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["total"])
	assert.Equal(t, float64(2), data["totalPages"])
	assert.Len(t, data["items"], 2)
}

func TestMainCategoryHandler_List_BeyondLastPage(t *testing.T) {
	h, ctx, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	testutil.TestMainCategory(t, ctx.DB, "Class 10")

	router := gin.New()
	router.GET("/admin/main-categories", h.List)

	// 超出最后一页是成功响应，不是错误
	req := httptest.NewRequest("GET", "/admin/main-categories?page=99&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total"])
	assert.Len(t, data["items"], 0)
}

func TestMainCategoryHandler_List_InvalidLimit(t *testing.T) {
	h, _, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/admin/main-categories", h.List)

	req := httptest.NewRequest("GET", "/admin/main-categories?page=1&limit=-5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMainCategoryHandler_List_BadSortField(t *testing.T) {
	h, _, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/admin/main-categories", h.List)

	req := httptest.NewRequest("GET", "/admin/main-categories?sort=password", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMainCategoryHandler_Update_Success(t *testing.T) {
	h, ctx, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	testutil.TestMainCategory(t, ctx.DB, "Class 10")

	router := gin.New()
	router.PUT("/admin/main-category/:slug", h.Update)

	req := httptest.NewRequest("PUT", "/admin/main-category/10", jsonBody(t, gin.H{"title": "Class 12"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestMainCategoryHandler_Delete_Success(t *testing.T) {
	h, ctx, cleanup := setupMainCategoryHandler(t)
	defer cleanup()

	testutil.TestMainCategory(t, ctx.DB, "Class 10")

	router := gin.New()
	router.DELETE("/admin/main-category/:slug", h.Delete)

	req := httptest.NewRequest("DELETE", "/admin/main-category/10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("DELETE", "/admin/main-category/10", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
