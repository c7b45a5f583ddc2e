package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

// StudentContentHandler 学生端公开内容接口，读多写少，走 Redis 缓存
type StudentContentHandler struct {
	contentService *service.ContentService
}

func NewStudentContentHandler(contentService *service.ContentService) *StudentContentHandler {
	return &StudentContentHandler{
		contentService: contentService,
	}
}

// List 公开内容列表
// GET /api/student/content
func (h *StudentContentHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	page, err := h.contentService.ListPublic(c.Request.Context(), q)
	if err != nil {
		listError(c, err)
		return
	}

	response.SuccessPage(c, page.Total, q.Page, q.Limit, page.Items)
}

// Get 公开内容详情
// GET /api/student/content/:slug
func (h *StudentContentHandler) Get(c *gin.Context) {
	content, err := h.contentService.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
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
