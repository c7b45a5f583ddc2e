package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/api/middleware"
	"github.com/padhaihub/padhai_go_server/internal/model"
	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Create 创建购买记录
// POST /api/purchases/create
func (h *PurchaseHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	// 只能为自己创建购买记录，管理员可以代任何用户补录
	role, _ := middleware.GetUserRole(c)
	if req.UserID != userID && role != model.RoleAdmin {
		response.PermissionError(c, "")
		return
	}

	purchase, err := h.purchaseService.Create(&req)
	if err != nil {
		switch err {
		case service.ErrUserNotFound, service.ErrContentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, "购买成功", purchase)
}

// ListByUser 用户的购买列表
// GET /api/purchases/:userId
func (h *PurchaseHandler) ListByUser(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的用户ID")
		return
	}

	role, _ := middleware.GetUserRole(c)
	if targetID != userID && role != model.RoleAdmin {
		response.PermissionError(c, "")
		return
	}

	// 没有购买记录返回空列表
	items, err := h.purchaseService.ListByUser(targetID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, items)
}

// Download 消耗一次下载配额
// GET /api/purchases/download/:purchaseId
func (h *PurchaseHandler) Download(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	purchaseID, err := strconv.ParseInt(c.Param("purchaseId"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的购买记录ID")
		return
	}

	resp, err := h.purchaseService.Download(userID, purchaseID)
	if err != nil {
		switch err {
		case service.ErrPurchaseNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrQuotaExceeded:
			response.QuotaError(c, err.Error())
		case service.ErrContentUnavailable:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, resp)
}
