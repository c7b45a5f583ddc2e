package model

import (
	"time"
)

// MainCategory 顶层分类（班级，如 "Class 11th"）
type MainCategory struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;uniqueIndex;not null" json:"title"`
	Slug      string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MainCategory) TableName() string {
	return "main_categories"
}
