package model

import (
	"time"
)

// Stream 选科方向（如 Science / Commerce / Arts），仅对高年级班级有意义
type Stream struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug           string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	MainCategoryID int64     `gorm:"not null;index" json:"main_category_id"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// 关联
	MainCategory *MainCategory `gorm:"foreignKey:MainCategoryID" json:"main_category,omitempty"`
}

func (Stream) TableName() string {
	return "streams"
}
