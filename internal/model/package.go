package model

import (
	"time"
)

// Package 多个内容打包售卖的套餐，全局数量有上限
type Package struct {
	ID             int64       `gorm:"primaryKey" json:"id"`
	Title          string      `gorm:"size:200;not null" json:"title"`
	Slug           string      `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Description    string      `gorm:"type:text" json:"description,omitempty"`
	Price          float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationInDays int         `gorm:"not null" json:"duration_in_days"`
	Contents       Int64Array  `gorm:"type:json" json:"contents"`
	Features       StringArray `gorm:"type:json" json:"features,omitempty"`
	Image          string      `gorm:"size:500" json:"image,omitempty"`
	IsActive       bool        `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (Package) TableName() string {
	return "packages"
}
