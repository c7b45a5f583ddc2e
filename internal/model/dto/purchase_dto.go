package dto

import "time"

// CreatePurchaseRequest 创建购买记录
// payment_id 是支付网关的流水号，本服务不做校验
type CreatePurchaseRequest struct {
	UserID    int64   `json:"user_id" binding:"required"`
	ContentID int64   `json:"content_id" binding:"required"`
	PricePaid float64 `json:"price_paid"`
	PaymentID string  `json:"payment_id"`
}

// PurchaseContent 购买列表里附带的内容摘要
type PurchaseContent struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	PdfURL string  `json:"pdf_url"`
	Price  float64 `json:"price"`
}

// PurchaseItem 用户购买列表项
type PurchaseItem struct {
	ID                 int64            `json:"id"`
	ContentID          int64            `json:"content_id"`
	PurchasedAt        time.Time        `json:"purchased_at"`
	PricePaid          float64          `json:"price_paid"`
	Status             string           `json:"status"`
	DownloadLimit      int              `json:"download_limit"`
	DownloadsRemaining int              `json:"downloads_remaining"`
	AccessExpiresAt    *time.Time       `json:"access_expires_at,omitempty"`
	Content            *PurchaseContent `json:"content,omitempty"`
}

// DownloadResponse 下载成功后的返回
type DownloadResponse struct {
	PdfURL             string `json:"pdf_url"`
	DownloadsRemaining int    `json:"downloads_remaining"`
}
