package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/slug"
	"github.com/padhaihub/padhai_go_server/internal/repository"
)

var (
	ErrStreamNotFound = errors.New("选科不存在")
	ErrStreamExists   = errors.New("选科已存在")
)

type StreamService struct {
	streamRepo   *repository.StreamRepository
	categoryRepo *repository.MainCategoryRepository
}

func NewStreamService(streamRepo *repository.StreamRepository, categoryRepo *repository.MainCategoryRepository) *StreamService {
	return &StreamService{
		streamRepo:   streamRepo,
		categoryRepo: categoryRepo,
	}
}

// Create 创建选科，名称走与班级相同的规范化
func (s *StreamService) Create(req *dto.CreateStreamRequest) (*model.Stream, error) {
	if _, err := s.categoryRepo.GetByID(req.MainCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	newSlug := slug.MakeClassSlug(req.Name)

	exists, err := s.streamRepo.ExistsBySlug(newSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrStreamExists
	}

	stream := &model.Stream{
		Name:           req.Name,
		Slug:           newSlug,
		MainCategoryID: req.MainCategoryID,
	}
	if err := s.streamRepo.Create(stream); err != nil {
		return nil, err
	}

	return stream, nil
}

// List 选科列表
func (s *StreamService) List(q *dto.ListQuery) ([]*model.Stream, int64, error) {
	if err := normalizeListQuery(q); err != nil {
		return nil, 0, err
	}
	return s.streamRepo.List(q.Search, q.Page, q.Limit, q.Sort, q.Order)
}

// GetBySlug 按 slug 查询单个选科
func (s *StreamService) GetBySlug(streamSlug string) (*model.Stream, error) {
	stream, err := s.streamRepo.GetBySlug(streamSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStreamNotFound
		}
		return nil, err
	}
	return stream, nil
}

// Update 更新选科
func (s *StreamService) Update(streamSlug string, req *dto.UpdateStreamRequest) (*model.Stream, error) {
	stream, err := s.GetBySlug(streamSlug)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(req.MainCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	newSlug := slug.MakeClassSlug(req.Name)

	exists, err := s.streamRepo.ExistsBySlug(newSlug, stream.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrStreamExists
	}

	stream.Name = req.Name
	stream.Slug = newSlug
	stream.MainCategoryID = req.MainCategoryID
	stream.MainCategory = nil
	if err := s.streamRepo.Update(stream); err != nil {
		return nil, err
	}

	return stream, nil
}

// Delete 删除选科
func (s *StreamService) Delete(streamSlug string) error {
	affected, err := s.streamRepo.DeleteBySlug(streamSlug)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStreamNotFound
	}
	return nil
}
