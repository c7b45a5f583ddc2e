package model

import (
	"time"
)

// SubCategory 学科下的内容类型，名称限定在固定集合内
type SubCategory struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	SubjectID int64     `gorm:"not null;index" json:"subject_id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Slug      string    `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}

func (SubCategory) TableName() string {
	return "sub_categories"
}

// SubCategoryNames 允许的子分类名称
var SubCategoryNames = []string{"MCQ", "Question Bank", "Short Book", "Unsolved", "Model Paper"}

// IsValidSubCategoryName 校验子分类名称是否在允许集合内
func IsValidSubCategoryName(name string) bool {
	for _, n := range SubCategoryNames {
		if n == name {
			return true
		}
	}
	return false
}
