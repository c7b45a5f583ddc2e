package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

type MainCategoryHandler struct {
	categoryService *service.MainCategoryService
}

func NewMainCategoryHandler(categoryService *service.MainCategoryService) *MainCategoryHandler {
	return &MainCategoryHandler{
		categoryService: categoryService,
	}
}

// Create 创建班级
// POST /api/admin/main-category
func (h *MainCategoryHandler) Create(c *gin.Context) {
	var req dto.CreateMainCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		switch err {
		case service.ErrCategoryExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, "创建成功", category)
}

// List 班级列表
// GET /api/admin/main-categories
func (h *MainCategoryHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	items, total, err := h.categoryService.List(q)
	if err != nil {
		listError(c, err)
		return
	}

	response.SuccessPage(c, total, q.Page, q.Limit, items)
}

// Get 班级详情
// GET /api/admin/main-category/:slug
func (h *MainCategoryHandler) Get(c *gin.Context) {
	category, err := h.categoryService.GetBySlug(c.Param("slug"))
	if err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, category)
}

// Update 更新班级
// PUT /api/admin/main-category/:slug
func (h *MainCategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateMainCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	category, err := h.categoryService.Update(c.Param("slug"), &req)
	if err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrCategoryExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", category)
}

// Delete 删除班级
// DELETE /api/admin/main-category/:slug
func (h *MainCategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Param("slug")); err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
