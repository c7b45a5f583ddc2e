package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

type PackageHandler struct {
	packageService *service.PackageService
}

func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// Create 创建套餐
// POST /api/admin/package
func (h *PackageHandler) Create(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	pkg, err := h.packageService.Create(&req)
	if err != nil {
		switch err {
		case service.ErrPackageLimitReached:
			response.ParamError(c, err.Error())
		case service.ErrPackageContentBad:
			response.ParamError(c, err.Error())
		case service.ErrPackageExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, "创建成功", pkg)
}

// List 套餐列表
// GET /api/admin/packages
func (h *PackageHandler) List(c *gin.Context) {
	items, err := h.packageService.List()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, items)
}

// Get 套餐详情
// GET /api/admin/package/:slug
func (h *PackageHandler) Get(c *gin.Context) {
	pkg, err := h.packageService.GetBySlug(c.Param("slug"))
	if err != nil {
		switch err {
		case service.ErrPackageNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, pkg)
}

// Update 更新套餐
// PUT /api/admin/package/:slug
func (h *PackageHandler) Update(c *gin.Context) {
	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	pkg, err := h.packageService.Update(c.Param("slug"), &req)
	if err != nil {
		switch err {
		case service.ErrPackageNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrPackageContentBad:
			response.ParamError(c, err.Error())
		case service.ErrPackageExists:
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", pkg)
}

// Delete 删除套餐
// DELETE /api/admin/package/:slug
func (h *PackageHandler) Delete(c *gin.Context) {
	if err := h.packageService.Delete(c.Param("slug")); err != nil {
		switch err {
		case service.ErrPackageNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
