package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 各类错误的默认消息
const (
	msgParamError       = "参数错误"
	msgAuthFailed       = "认证失败"
	msgPermissionDenied = "权限不足"
	msgNotFound         = "资源不存在"
	msgConflict         = "资源已存在"
	msgQuotaExceeded    = "下载次数已用完"
	msgServerError      = "服务器内部错误"
)

// Response 统一响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PageData 分页数据结构
type PageData struct {
	Total       int64       `json:"total"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
	Items       interface{} `json:"items"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage 带自定义消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessPage 分页成功响应
func SuccessPage(c *gin.Context, total int64, page, limit int, items interface{}) {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: PageData{
			Total:       total,
			CurrentPage: page,
			TotalPages:  totalPages,
			Items:       items,
		},
	})
}

// Error 错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// ParamError 参数错误（400）
func ParamError(c *gin.Context, message string) {
	if message == "" {
		message = msgParamError
	}
	Error(c, http.StatusBadRequest, message)
}

// ConflictError 重复资源（400）
func ConflictError(c *gin.Context, message string) {
	if message == "" {
		message = msgConflict
	}
	Error(c, http.StatusBadRequest, message)
}

// AuthError 认证失败（401）
func AuthError(c *gin.Context, message string) {
	if message == "" {
		message = msgAuthFailed
	}
	Error(c, http.StatusUnauthorized, message)
}

// PermissionError 权限不足（403）
func PermissionError(c *gin.Context, message string) {
	if message == "" {
		message = msgPermissionDenied
	}
	Error(c, http.StatusForbidden, message)
}

// NotFoundError 资源不存在（404）
func NotFoundError(c *gin.Context, message string) {
	if message == "" {
		message = msgNotFound
	}
	Error(c, http.StatusNotFound, message)
}

// QuotaError 下载配额用尽（400）
func QuotaError(c *gin.Context, message string) {
	if message == "" {
		message = msgQuotaExceeded
	}
	Error(c, http.StatusBadRequest, message)
}

// ServerError 服务器错误（500）
func ServerError(c *gin.Context, message string) {
	if message == "" {
		message = msgServerError
	}
	Error(c, http.StatusInternalServerError, message)
}
