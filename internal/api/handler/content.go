package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// contentError 内容写操作的错误映射
func contentError(c *gin.Context, err error) {
	switch err {
	case service.ErrContentNotFound,
		service.ErrCategoryNotFound,
		service.ErrSubjectNotFound,
		service.ErrSubCategoryNotFound,
		service.ErrStreamNotFound:
		response.NotFoundError(c, err.Error())
	case service.ErrContentExists:
		response.ConflictError(c, err.Error())
	case service.ErrStreamRequired, service.ErrStreamNotAllowed, service.ErrStreamMismatch:
		response.ParamError(c, err.Error())
	default:
		response.ServerError(c, "")
	}
}

// Create 创建内容
// POST /api/admin/content
func (h *ContentHandler) Create(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	content, err := h.contentService.Create(&req)
	if err != nil {
		contentError(c, err)
		return
	}

	response.Created(c, "创建成功", content)
}

// List 内容列表（管理端）
// GET /api/admin/content
func (h *ContentHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	items, total, err := h.contentService.List(q)
	if err != nil {
		listError(c, err)
		return
	}

	response.SuccessPage(c, total, q.Page, q.Limit, items)
}

// Get 内容详情（管理端）
// GET /api/admin/content/:slug
func (h *ContentHandler) Get(c *gin.Context) {
	content, err := h.contentService.GetBySlug(c.Param("slug"))
	if err != nil {
		switch err {
		case service.ErrContentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, content)
}

// Update 更新内容
// PUT /api/admin/content/:slug
func (h *ContentHandler) Update(c *gin.Context) {
	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	content, err := h.contentService.Update(c.Param("slug"), &req)
	if err != nil {
		contentError(c, err)
		return
	}

	response.SuccessWithMessage(c, "更新成功", content)
}

// Delete 删除内容
// DELETE /api/admin/content/:slug
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contentService.Delete(c.Param("slug")); err != nil {
		switch err {
		case service.ErrContentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
