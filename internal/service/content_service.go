package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/cache"
	"github.com/padhaihub/padhai_go_server/internal/pkg/slug"
	"github.com/padhaihub/padhai_go_server/internal/repository"
)

var (
	ErrContentNotFound = errors.New("内容不存在")
	ErrContentExists   = errors.New("内容已存在")
)

// ContentPage 公开目录的缓存单元
type ContentPage struct {
	Items []*model.Content `json:"items"`
	Total int64            `json:"total"`
}

type ContentService struct {
	contentRepo     *repository.ContentRepository
	categoryRepo    *repository.MainCategoryRepository
	subjectRepo     *repository.SubjectRepository
	subCategoryRepo *repository.SubCategoryRepository
	streamRepo      *repository.StreamRepository
	cache           *cache.Cache // 可为 nil（测试或未配置 Redis）
}

func NewContentService(
	contentRepo *repository.ContentRepository,
	categoryRepo *repository.MainCategoryRepository,
	subjectRepo *repository.SubjectRepository,
	subCategoryRepo *repository.SubCategoryRepository,
	streamRepo *repository.StreamRepository,
	contentCache *cache.Cache,
) *ContentService {
	return &ContentService{
		contentRepo:     contentRepo,
		categoryRepo:    categoryRepo,
		subjectRepo:     subjectRepo,
		subCategoryRepo: subCategoryRepo,
		streamRepo:      streamRepo,
		cache:           contentCache,
	}
}

// resolveRefs 校验内容引用的分类均存在，并返回选科规则需要的快照
func (s *ContentService) resolveRefs(mainCategoryID, subjectID, subCategoryID int64, streamID *int64) (*model.MainCategory, *model.Stream, error) {
	category, err := s.categoryRepo.GetByID(mainCategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCategoryNotFound
		}
		return nil, nil, err
	}

	if _, err := s.subjectRepo.GetByID(subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSubjectNotFound
		}
		return nil, nil, err
	}

	if _, err := s.subCategoryRepo.GetByID(subCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSubCategoryNotFound
		}
		return nil, nil, err
	}

	var stream *model.Stream
	if streamID != nil {
		stream, err = s.streamRepo.GetByID(*streamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrStreamNotFound
			}
			return nil, nil, err
		}
	}

	return category, stream, nil
}

// Create 创建内容
func (s *ContentService) Create(req *dto.CreateContentRequest) (*model.Content, error) {
	category, stream, err := s.resolveRefs(req.MainCategoryID, req.SubjectID, req.SubCategoryID, req.StreamID)
	if err != nil {
		return nil, err
	}

	if err := ValidateStreamSelection(category, stream); err != nil {
		return nil, err
	}

	newSlug := slug.Make(req.Title)

	exists, err := s.contentRepo.ExistsBySlug(newSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrContentExists
	}

	// 未显式指定时默认受限（需购买）
	isRestricted := true
	if req.IsRestricted != nil {
		isRestricted = *req.IsRestricted
	}

	content := &model.Content{
		Title:                 req.Title,
		Slug:                  newSlug,
		MainCategoryID:        req.MainCategoryID,
		SubjectID:             req.SubjectID,
		SubCategoryID:         req.SubCategoryID,
		StreamID:              req.StreamID,
		PdfURL:                req.PdfURL,
		CoverImage:            req.CoverImage,
		IsTextToSpeechEnabled: req.IsTextToSpeechEnabled,
		IsFlipbookEnabled:     req.IsFlipbookEnabled,
		IsRestricted:          isRestricted,
		Price:                 req.Price,
		DownloadLimit:         req.DownloadLimit,
	}
	if err := s.contentRepo.Create(content); err != nil {
		return nil, err
	}

	s.invalidateCache()
	return content, nil
}

// List 内容列表（管理端，不走缓存）
func (s *ContentService) List(q *dto.ListQuery) ([]*model.Content, int64, error) {
	if err := normalizeListQuery(q); err != nil {
		return nil, 0, err
	}
	return s.contentRepo.List(q.Search, q.Page, q.Limit, q.Sort, q.Order)
}

// GetBySlug 按 slug 查询单个内容
func (s *ContentService) GetBySlug(contentSlug string) (*model.Content, error) {
	content, err := s.contentRepo.GetBySlug(contentSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return content, nil
}

// Update 更新内容，slug 和选科规则重新计算
func (s *ContentService) Update(contentSlug string, req *dto.UpdateContentRequest) (*model.Content, error) {
	content, err := s.GetBySlug(contentSlug)
	if err != nil {
		return nil, err
	}

	category, stream, err := s.resolveRefs(req.MainCategoryID, req.SubjectID, req.SubCategoryID, req.StreamID)
	if err != nil {
		return nil, err
	}

	if err := ValidateStreamSelection(category, stream); err != nil {
		return nil, err
	}

	newSlug := slug.Make(req.Title)

	exists, err := s.contentRepo.ExistsBySlug(newSlug, content.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrContentExists
	}

	isRestricted := content.IsRestricted
	if req.IsRestricted != nil {
		isRestricted = *req.IsRestricted
	}

	content.Title = req.Title
	content.Slug = newSlug
	content.MainCategoryID = req.MainCategoryID
	content.SubjectID = req.SubjectID
	content.SubCategoryID = req.SubCategoryID
	content.StreamID = req.StreamID
	content.PdfURL = req.PdfURL
	content.CoverImage = req.CoverImage
	content.IsTextToSpeechEnabled = req.IsTextToSpeechEnabled
	content.IsFlipbookEnabled = req.IsFlipbookEnabled
	content.IsRestricted = isRestricted
	content.Price = req.Price
	content.DownloadLimit = req.DownloadLimit
	content.MainCategory = nil
	content.Subject = nil
	content.SubCategory = nil
	content.Stream = nil
	if err := s.contentRepo.Update(content); err != nil {
		return nil, err
	}

	s.invalidateCache()
	return content, nil
}

// Delete 删除内容
func (s *ContentService) Delete(contentSlug string) error {
	affected, err := s.contentRepo.DeleteBySlug(contentSlug)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContentNotFound
	}

	s.invalidateCache()
	return nil
}

// ListPublic 学生端内容列表，Redis 读缓存
func (s *ContentService) ListPublic(ctx context.Context, q *dto.ListQuery) (*ContentPage, error) {
	if err := normalizeListQuery(q); err != nil {
		return nil, err
	}

	key := cache.ContentListKey(q.Search, q.Page, q.Limit, q.Sort, q.Order)
	if s.cache != nil {
		var page ContentPage
		if hit, err := s.cache.Get(ctx, key, &page); err == nil && hit {
			return &page, nil
		}
	}

	items, total, err := s.contentRepo.List(q.Search, q.Page, q.Limit, q.Sort, q.Order)
	if err != nil {
		return nil, err
	}

	page := &ContentPage{Items: items, Total: total}
	if s.cache != nil {
		// 缓存写失败不影响请求
		_ = s.cache.Set(ctx, key, page)
	}
	return page, nil
}

// GetPublicBySlug 学生端内容详情，Redis 读缓存
func (s *ContentService) GetPublicBySlug(ctx context.Context, contentSlug string) (*model.Content, error) {
	key := cache.ContentDetailKey(contentSlug)
	if s.cache != nil {
		var content model.Content
		if hit, err := s.cache.Get(ctx, key, &content); err == nil && hit {
			return &content, nil
		}
	}

	content, err := s.GetBySlug(contentSlug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, content)
	}
	return content, nil
}

func (s *ContentService) invalidateCache() {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateContent(context.Background())
}
