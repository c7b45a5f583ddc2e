package model

import (
	"time"
)

// Content 可售卖的 PDF 内容
type Content struct {
	ID                    int64     `gorm:"primaryKey" json:"id"`
	MainCategoryID        int64     `gorm:"not null;index" json:"main_category_id"`
	SubjectID             int64     `gorm:"not null;index" json:"subject_id"`
	SubCategoryID         int64     `gorm:"not null;index" json:"sub_category_id"`
	StreamID              *int64    `gorm:"index" json:"stream_id,omitempty"`
	Title                 string    `gorm:"size:200;not null" json:"title"`
	Slug                  string    `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	PdfURL                string    `gorm:"size:500;not null" json:"pdf_url"`
	CoverImage            string    `gorm:"size:500" json:"cover_image,omitempty"`
	IsTextToSpeechEnabled bool      `gorm:"not null;default:false" json:"is_text_to_speech_enabled"`
	IsFlipbookEnabled     bool      `gorm:"not null;default:false" json:"is_flipbook_enabled"`
	IsRestricted          bool      `gorm:"not null" json:"is_restricted"` // true = 购买后才能下载
	Price                 float64   `gorm:"type:decimal(10,2);default:0" json:"price"`
	DownloadLimit         int       `gorm:"default:0" json:"download_limit"` // 0 = 未设置，购买时取默认值
	CreatedAt             time.Time `gorm:"index" json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`

	// 关联
	MainCategory *MainCategory `gorm:"foreignKey:MainCategoryID" json:"main_category,omitempty"`
	Subject      *Subject      `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	SubCategory  *SubCategory  `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	Stream       *Stream       `gorm:"foreignKey:StreamID" json:"stream,omitempty"`
}

func (Content) TableName() string {
	return "contents"
}
