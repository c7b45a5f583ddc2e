package model

import (
	"time"
)

// 购买状态
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
)

// Purchase 购买记录（下载授权），每条记录持有独立的下载配额
// DownloadsRemaining 只会减少，最低为 0
type Purchase struct {
	ID                 int64      `gorm:"primaryKey" json:"id"`
	UserID             int64      `gorm:"not null;index" json:"user_id"`
	ContentID          int64      `gorm:"not null;index" json:"content_id"`
	PurchasedAt        time.Time  `gorm:"not null" json:"purchased_at"`
	PricePaid          float64    `gorm:"type:decimal(10,2);not null" json:"price_paid"`
	PaymentID          string     `gorm:"size:100" json:"payment_id,omitempty"` // 支付网关流水号，不做校验
	Status             string     `gorm:"size:20;default:completed;index" json:"status"`
	DownloadLimit      int        `gorm:"not null" json:"download_limit"` // 购买时从内容上快照
	DownloadsRemaining int        `gorm:"not null" json:"downloads_remaining"`
	AccessExpiresAt    *time.Time `json:"access_expires_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// 关联
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content *Content `gorm:"foreignKey:ContentID" json:"content,omitempty"`
}

func (Purchase) TableName() string {
	return "purchases"
}
