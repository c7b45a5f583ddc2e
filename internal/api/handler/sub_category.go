package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

type SubCategoryHandler struct {
	subCategoryService *service.SubCategoryService
}

func NewSubCategoryHandler(subCategoryService *service.SubCategoryService) *SubCategoryHandler {
	return &SubCategoryHandler{
		subCategoryService: subCategoryService,
	}
}

// Create 创建子分类
// POST /api/admin/sub-category
func (h *SubCategoryHandler) Create(c *gin.Context) {
	var req dto.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	subCategory, err := h.subCategoryService.Create(&req)
	if err != nil {
		switch err {
		case service.ErrInvalidSubCategoryName:
			response.ParamError(c, err.Error())
		case service.ErrSubjectNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrSubCategoryExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, "创建成功", subCategory)
}

// List 子分类列表，可用 ?subject=<slug> 过滤
// GET /api/admin/sub-categories
func (h *SubCategoryHandler) List(c *gin.Context) {
	items, err := h.subCategoryService.List(c.Query("subject"))
	if err != nil {
		switch err {
		case service.ErrSubjectNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, items)
}

// Get 子分类详情
// GET /api/admin/sub-category/:slug
func (h *SubCategoryHandler) Get(c *gin.Context) {
	subCategory, err := h.subCategoryService.GetBySlug(c.Param("slug"))
	if err != nil {
		switch err {
		case service.ErrSubCategoryNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, subCategory)
}

// Update 更新子分类
// PUT /api/admin/sub-category/:slug
func (h *SubCategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	subCategory, err := h.subCategoryService.Update(c.Param("slug"), &req)
	if err != nil {
		switch err {
		case service.ErrInvalidSubCategoryName:
			response.ParamError(c, err.Error())
		case service.ErrSubCategoryNotFound, service.ErrSubjectNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrSubCategoryExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", subCategory)
}

// Delete 删除子分类
// DELETE /api/admin/sub-category/:slug
func (h *SubCategoryHandler) Delete(c *gin.Context) {
	if err := h.subCategoryService.Delete(c.Param("slug")); err != nil {
		switch err {
		case service.ErrSubCategoryNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
