package model

import (
	"time"
)

// Subject 学科（如 Physics），挂在班级下，高年级班级必须指定选科
type Subject struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Slug           string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	MainCategoryID int64     `gorm:"not null;index" json:"main_category_id"`
	StreamID       *int64    `gorm:"index" json:"stream_id,omitempty"`
	CoverImage     string    `gorm:"size:500" json:"cover_image,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// 关联
	MainCategory *MainCategory `gorm:"foreignKey:MainCategoryID" json:"main_category,omitempty"`
	Stream       *Stream       `gorm:"foreignKey:StreamID" json:"stream,omitempty"`
}

func (Subject) TableName() string {
	return "subjects"
}
