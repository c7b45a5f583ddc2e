package dto

// CreateMainCategoryRequest 创建班级
type CreateMainCategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

// UpdateMainCategoryRequest 更新班级
type UpdateMainCategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateStreamRequest 创建选科
type CreateStreamRequest struct {
	Name           string `json:"name" binding:"required"`
	MainCategoryID int64  `json:"main_category_id" binding:"required"`
}

// UpdateStreamRequest 更新选科
type UpdateStreamRequest struct {
	Name           string `json:"name" binding:"required"`
	MainCategoryID int64  `json:"main_category_id" binding:"required"`
}

// CreateSubjectRequest 创建学科
type CreateSubjectRequest struct {
	Name           string `json:"name" binding:"required"`
	MainCategoryID int64  `json:"main_category_id" binding:"required"`
	StreamID       *int64 `json:"stream_id"`
	CoverImage     string `json:"cover_image"`
}

// UpdateSubjectRequest 更新学科
type UpdateSubjectRequest struct {
	Name           string `json:"name" binding:"required"`
	MainCategoryID int64  `json:"main_category_id" binding:"required"`
	StreamID       *int64 `json:"stream_id"`
	CoverImage     string `json:"cover_image"`
}

// CreateSubCategoryRequest 创建子分类
type CreateSubCategoryRequest struct {
	SubjectID int64  `json:"subject_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// UpdateSubCategoryRequest 更新子分类
type UpdateSubCategoryRequest struct {
	SubjectID int64  `json:"subject_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// CreateContentRequest 创建内容
type CreateContentRequest struct {
	Title                 string  `json:"title" binding:"required"`
	MainCategoryID        int64   `json:"main_category_id" binding:"required"`
	SubjectID             int64   `json:"subject_id" binding:"required"`
	SubCategoryID         int64   `json:"sub_category_id" binding:"required"`
	StreamID              *int64  `json:"stream_id"`
	PdfURL                string  `json:"pdf_url" binding:"required"`
	CoverImage            string  `json:"cover_image"`
	IsTextToSpeechEnabled bool    `json:"is_text_to_speech_enabled"`
	IsFlipbookEnabled     bool    `json:"is_flipbook_enabled"`
	IsRestricted          *bool   `json:"is_restricted"` // 缺省为 true
	Price                 float64 `json:"price"`
	DownloadLimit         int     `json:"download_limit"`
}

// UpdateContentRequest 更新内容
type UpdateContentRequest struct {
	Title                 string  `json:"title" binding:"required"`
	MainCategoryID        int64   `json:"main_category_id" binding:"required"`
	SubjectID             int64   `json:"subject_id" binding:"required"`
	SubCategoryID         int64   `json:"sub_category_id" binding:"required"`
	StreamID              *int64  `json:"stream_id"`
	PdfURL                string  `json:"pdf_url" binding:"required"`
	CoverImage            string  `json:"cover_image"`
	IsTextToSpeechEnabled bool    `json:"is_text_to_speech_enabled"`
	IsFlipbookEnabled     bool    `json:"is_flipbook_enabled"`
	IsRestricted          *bool   `json:"is_restricted"`
	Price                 float64 `json:"price"`
	DownloadLimit         int     `json:"download_limit"`
}

// CreatePackageRequest 创建套餐
type CreatePackageRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Price          float64  `json:"price" binding:"required"`
	DurationInDays int      `json:"duration_in_days" binding:"required"`
	Contents       []int64  `json:"contents"`
	Features       []string `json:"features"`
	Image          string   `json:"image"`
}

// UpdatePackageRequest 更新套餐
type UpdatePackageRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Price          float64  `json:"price" binding:"required"`
	DurationInDays int      `json:"duration_in_days" binding:"required"`
	Contents       []int64  `json:"contents"`
	Features       []string `json:"features"`
	Image          string   `json:"image"`
	IsActive       *bool    `json:"is_active"`
}
