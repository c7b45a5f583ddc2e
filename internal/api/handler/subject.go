package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
}

func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{
		subjectService: subjectService,
	}
}

// subjectError 学科写操作的错误映射，选科规则的三类错误都是参数错误
func subjectError(c *gin.Context, err error) {
	switch err {
	case service.ErrSubjectNotFound, service.ErrCategoryNotFound, service.ErrStreamNotFound:
		response.NotFoundError(c, err.Error())
	case service.ErrSubjectExists:
		response.ConflictError(c, err.Error())
	case service.ErrStreamRequired, service.ErrStreamNotAllowed, service.ErrStreamMismatch:
		response.ParamError(c, err.Error())
	default:
		response.ServerError(c, "")
	}
}

// Create 创建学科
// POST /api/admin/subject
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	subject, err := h.subjectService.Create(&req)
	if err != nil {
		subjectError(c, err)
		return
	}

	response.Created(c, "创建成功", subject)
}

// List 学科列表
// GET /api/admin/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	items, total, err := h.subjectService.List(q)
	if err != nil {
		listError(c, err)
		return
	}

	response.SuccessPage(c, total, q.Page, q.Limit, items)
}

// Get 学科详情
// GET /api/admin/subject/:slug
func (h *SubjectHandler) Get(c *gin.Context) {
	subject, err := h.subjectService.GetBySlug(c.Param("slug"))
	if err != nil {
		switch err {
		case service.ErrSubjectNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, subject)
}

// Update 更新学科
// PUT /api/admin/subject/:slug
func (h *SubjectHandler) Update(c *gin.Context) {
	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	subject, err := h.subjectService.Update(c.Param("slug"), &req)
	if err != nil {
		subjectError(c, err)
		return
	}

	response.SuccessWithMessage(c, "更新成功", subject)
}

// Delete 删除学科
// DELETE /api/admin/subject/:slug
func (h *SubjectHandler) Delete(c *gin.Context) {
	if err := h.subjectService.Delete(c.Param("slug")); err != nil {
		switch err {
		case service.ErrSubjectNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
