package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padhaihub/padhai_go_server/internal/model"
	"github.com/padhaihub/padhai_go_server/internal/repository"
	"github.com/padhaihub/padhai_go_server/internal/service"
	"github.com/padhaihub/padhai_go_server/internal/testutil"
)

func setupPurchaseHandler(t *testing.T) (*PurchaseHandler, *testContext, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	purchaseService := service.NewPurchaseService(
		repository.NewPurchaseRepository(db),
		repository.NewContentRepository(db),
		repository.NewUserRepository(db),
		5,
	)
	h := NewPurchaseHandler(purchaseService)

	ctx := &testContext{DB: db}

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return h, ctx, cleanup
}

func purchaseContent(t *testing.T, ctx *testContext) *model.Content {
	t.Helper()

	category := testutil.TestMainCategory(t, ctx.DB, "Class 10")
	subject := testutil.TestSubject(t, ctx.DB, "Mathematics", category.ID)
	subCategory := testutil.TestSubCategory(t, ctx.DB, subject, "MCQ")
	return testutil.TestContent(t, ctx.DB, "Algebra Basics", category.ID, subject.ID, subCategory.ID,
		testutil.WithPrice(49))
}

func TestPurchaseHandler_Create_Success(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	content := purchaseContent(t, ctx)

	router := gin.New()
	router.POST("/purchases/create", mockAuth(user.ID, model.RoleStudent), h.Create)

	req := httptest.NewRequest("POST", "/purchases/create", jsonBody(t, gin.H{
		"user_id":    user.ID,
		"content_id": content.ID,
		"price_paid": 49,
		"payment_id": "pay_123456",
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "completed", data["status"])
	assert.Equal(t, float64(5), data["downloads_remaining"])
}

func TestPurchaseHandler_Create_ForOtherUser(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	other := testutil.TestUser(t, ctx.DB)
	content := purchaseContent(t, ctx)

	router := gin.New()
	router.POST("/purchases/create", mockAuth(user.ID, model.RoleStudent), h.Create)

	// 学生不能替他人购买
	req := httptest.NewRequest("POST", "/purchases/create", jsonBody(t, gin.H{
		"user_id":    other.ID,
		"content_id": content.ID,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPurchaseHandler_Create_AdminForAnyUser(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	admin := testutil.TestUser(t, ctx.DB, testutil.WithRole(model.RoleAdmin))
	student := testutil.TestUser(t, ctx.DB)
	content := purchaseContent(t, ctx)

	router := gin.New()
	router.POST("/purchases/create", mockAuth(admin.ID, model.RoleAdmin), h.Create)

	req := httptest.NewRequest("POST", "/purchases/create", jsonBody(t, gin.H{
		"user_id":    student.ID,
		"content_id": content.ID,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPurchaseHandler_Create_ContentNotFound(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)

	router := gin.New()
	router.POST("/purchases/create", mockAuth(user.ID, model.RoleStudent), h.Create)

	req := httptest.NewRequest("POST", "/purchases/create", jsonBody(t, gin.H{
		"user_id":    user.ID,
		"content_id": 9999,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPurchaseHandler_ListByUser_Empty(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)

	router := gin.New()
	router.GET("/purchases/:userId", mockAuth(user.ID, model.RoleStudent), h.ListByUser)

	// 没有购买记录是成功的空列表，不是 404
	req := httptest.NewRequest("GET", fmt.Sprintf("/purchases/%d", user.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestPurchaseHandler_ListByUser_OtherUserForbidden(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	other := testutil.TestUser(t, ctx.DB)

	router := gin.New()
	router.GET("/purchases/:userId", mockAuth(user.ID, model.RoleStudent), h.ListByUser)

	req := httptest.NewRequest("GET", fmt.Sprintf("/purchases/%d", other.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPurchaseHandler_ListByUser_WithContent(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	content := purchaseContent(t, ctx)
	testutil.TestPurchase(t, ctx.DB, user.ID, content.ID)

	router := gin.New()
	router.GET("/purchases/:userId", mockAuth(user.ID, model.RoleStudent), h.ListByUser)

	req := httptest.NewRequest("GET", fmt.Sprintf("/purchases/%d", user.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)

	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)

	item, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	contentData, ok := item["content"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Algebra Basics", contentData["title"])
}

func TestPurchaseHandler_Download_Success(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	content := purchaseContent(t, ctx)
	purchase := testutil.TestPurchase(t, ctx.DB, user.ID, content.ID, testutil.WithQuota(3, 3))

	router := gin.New()
	router.GET("/purchases/download/:purchaseId", mockAuth(user.ID, model.RoleStudent), h.Download)

	req := httptest.NewRequest("GET", fmt.Sprintf("/purchases/download/%d", purchase.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, content.PdfURL, data["pdf_url"])
	assert.Equal(t, float64(2), data["downloads_remaining"])
}

func TestPurchaseHandler_Download_QuotaExceeded(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	content := purchaseContent(t, ctx)
	purchase := testutil.TestPurchase(t, ctx.DB, user.ID, content.ID, testutil.WithRemaining(0))

	router := gin.New()
	router.GET("/purchases/download/:purchaseId", mockAuth(user.ID, model.RoleStudent), h.Download)

	req := httptest.NewRequest("GET", fmt.Sprintf("/purchases/download/%d", purchase.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestPurchaseHandler_Download_OthersPurchase(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)
	other := testutil.TestUser(t, ctx.DB)
	content := purchaseContent(t, ctx)
	purchase := testutil.TestPurchase(t, ctx.DB, other.ID, content.ID)

	router := gin.New()
	router.GET("/purchases/download/:purchaseId", mockAuth(user.ID, model.RoleStudent), h.Download)

	req := httptest.NewRequest("GET", fmt.Sprintf("/purchases/download/%d", purchase.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPurchaseHandler_Download_BadID(t *testing.T) {
	h, ctx, cleanup := setupPurchaseHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, ctx.DB)

	router := gin.New()
	router.GET("/purchases/download/:purchaseId", mockAuth(user.ID, model.RoleStudent), h.Download)

	req := httptest.NewRequest("GET", "/purchases/download/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
