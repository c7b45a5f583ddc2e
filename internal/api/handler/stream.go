package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

type StreamHandler struct {
	streamService *service.StreamService
}

func NewStreamHandler(streamService *service.StreamService) *StreamHandler {
	return &StreamHandler{
		streamService: streamService,
	}
}

// Create 创建选科
// POST /api/admin/stream
func (h *StreamHandler) Create(c *gin.Context) {
	var req dto.CreateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	stream, err := h.streamService.Create(&req)
	if err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrStreamExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, "创建成功", stream)
}

// List 选科列表
// GET /api/admin/streams
func (h *StreamHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	items, total, err := h.streamService.List(q)
	if err != nil {
		listError(c, err)
		return
	}

	response.SuccessPage(c, total, q.Page, q.Limit, items)
}

// Get 选科详情
// GET /api/admin/stream/:slug
func (h *StreamHandler) Get(c *gin.Context) {
	stream, err := h.streamService.GetBySlug(c.Param("slug"))
	if err != nil {
		switch err {
		case service.ErrStreamNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, stream)
}

// Update 更新选科
// PUT /api/admin/stream/:slug
func (h *StreamHandler) Update(c *gin.Context) {
	var req dto.UpdateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	stream, err := h.streamService.Update(c.Param("slug"), &req)
	if err != nil {
		switch err {
		case service.ErrStreamNotFound, service.ErrCategoryNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrStreamExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", stream)
}

// Delete 删除选科
// DELETE /api/admin/stream/:slug
func (h *StreamHandler) Delete(c *gin.Context) {
	if err := h.streamService.Delete(c.Param("slug")); err != nil {
		switch err {
		case service.ErrStreamNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
