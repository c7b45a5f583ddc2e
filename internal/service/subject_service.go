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
	ErrSubjectNotFound = errors.New("学科不存在")
	ErrSubjectExists   = errors.New("学科已存在")
)

type SubjectService struct {
	subjectRepo  *repository.SubjectRepository
	categoryRepo *repository.MainCategoryRepository
	streamRepo   *repository.StreamRepository
}

func NewSubjectService(
	subjectRepo *repository.SubjectRepository,
	categoryRepo *repository.MainCategoryRepository,
	streamRepo *repository.StreamRepository,
) *SubjectService {
	return &SubjectService{
		subjectRepo:  subjectRepo,
		categoryRepo: categoryRepo,
		streamRepo:   streamRepo,
	}
}

// resolveTaxonomy 解析班级和选科引用，供选科规则校验使用
func (s *SubjectService) resolveTaxonomy(mainCategoryID int64, streamID *int64) (*model.MainCategory, *model.Stream, error) {
	category, err := s.categoryRepo.GetByID(mainCategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCategoryNotFound
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

// Create 创建学科
// 选科规则在每次写入时基于当前班级标题重新判断
func (s *SubjectService) Create(req *dto.CreateSubjectRequest) (*model.Subject, error) {
	category, stream, err := s.resolveTaxonomy(req.MainCategoryID, req.StreamID)
	if err != nil {
		return nil, err
	}

	if err := ValidateStreamSelection(category, stream); err != nil {
		return nil, err
	}

	newSlug := slug.Make(req.Name)

	exists, err := s.subjectRepo.ExistsBySlug(newSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSubjectExists
	}

	subject := &model.Subject{
		Name:           req.Name,
		Slug:           newSlug,
		MainCategoryID: req.MainCategoryID,
		StreamID:       req.StreamID,
		CoverImage:     req.CoverImage,
	}
	if err := s.subjectRepo.Create(subject); err != nil {
		return nil, err
	}

	return subject, nil
}

// List 学科列表
func (s *SubjectService) List(q *dto.ListQuery) ([]*model.Subject, int64, error) {
	if err := normalizeListQuery(q); err != nil {
		return nil, 0, err
	}
	return s.subjectRepo.List(q.Search, q.Page, q.Limit, q.Sort, q.Order)
}

// GetBySlug 按 slug 查询单个学科
func (s *SubjectService) GetBySlug(subjectSlug string) (*model.Subject, error) {
	subject, err := s.subjectRepo.GetBySlug(subjectSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return subject, nil
}

// Update 更新学科，选科规则重新校验
func (s *SubjectService) Update(subjectSlug string, req *dto.UpdateSubjectRequest) (*model.Subject, error) {
	subject, err := s.GetBySlug(subjectSlug)
	if err != nil {
		return nil, err
	}

	category, stream, err := s.resolveTaxonomy(req.MainCategoryID, req.StreamID)
	if err != nil {
		return nil, err
	}

	if err := ValidateStreamSelection(category, stream); err != nil {
		return nil, err
	}

	newSlug := slug.Make(req.Name)

	exists, err := s.subjectRepo.ExistsBySlug(newSlug, subject.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSubjectExists
	}

	subject.Name = req.Name
	subject.Slug = newSlug
	subject.MainCategoryID = req.MainCategoryID
	subject.StreamID = req.StreamID
	subject.CoverImage = req.CoverImage
	subject.MainCategory = nil
	subject.Stream = nil
	if err := s.subjectRepo.Update(subject); err != nil {
		return nil, err
	}

	return subject, nil
}

// Delete 删除学科
func (s *SubjectService) Delete(subjectSlug string) error {
	affected, err := s.subjectRepo.DeleteBySlug(subjectSlug)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubjectNotFound
	}
	return nil
}
