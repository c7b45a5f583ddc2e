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
	ErrSubCategoryNotFound    = errors.New("子分类不存在")
	ErrSubCategoryExists      = errors.New("子分类已存在")
	ErrInvalidSubCategoryName = errors.New("子分类名称不在允许范围内")
)

type SubCategoryService struct {
	subCategoryRepo *repository.SubCategoryRepository
	subjectRepo     *repository.SubjectRepository
}

func NewSubCategoryService(
	subCategoryRepo *repository.SubCategoryRepository,
	subjectRepo *repository.SubjectRepository,
) *SubCategoryService {
	return &SubCategoryService{
		subCategoryRepo: subCategoryRepo,
		subjectRepo:     subjectRepo,
	}
}

// makeSlug 子分类 slug 带学科前缀，同名子分类可以挂在不同学科下
func makeSubCategorySlug(subjectSlug, name string) string {
	return subjectSlug + "-" + slug.Make(name)
}

// Create 创建子分类，名称限定在固定集合内
func (s *SubCategoryService) Create(req *dto.CreateSubCategoryRequest) (*model.SubCategory, error) {
	if !model.IsValidSubCategoryName(req.Name) {
		return nil, ErrInvalidSubCategoryName
	}

	subject, err := s.subjectRepo.GetByID(req.SubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	newSlug := makeSubCategorySlug(subject.Slug, req.Name)

	exists, err := s.subCategoryRepo.ExistsBySlug(newSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSubCategoryExists
	}

	subCategory := &model.SubCategory{
		SubjectID: req.SubjectID,
		Name:      req.Name,
		Slug:      newSlug,
	}
	if err := s.subCategoryRepo.Create(subCategory); err != nil {
		return nil, err
	}

	return subCategory, nil
}

// List 子分类列表，可按学科 slug 过滤
func (s *SubCategoryService) List(subjectSlug string) ([]*model.SubCategory, error) {
	var subjectID *int64
	if subjectSlug != "" {
		subject, err := s.subjectRepo.GetBySlug(subjectSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSubjectNotFound
			}
			return nil, err
		}
		subjectID = &subject.ID
	}

	return s.subCategoryRepo.List(subjectID)
}

// GetBySlug 按 slug 查询单个子分类
func (s *SubCategoryService) GetBySlug(subCategorySlug string) (*model.SubCategory, error) {
	subCategory, err := s.subCategoryRepo.GetBySlug(subCategorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubCategoryNotFound
		}
		return nil, err
	}
	return subCategory, nil
}

// Update 更新子分类
func (s *SubCategoryService) Update(subCategorySlug string, req *dto.UpdateSubCategoryRequest) (*model.SubCategory, error) {
	if !model.IsValidSubCategoryName(req.Name) {
		return nil, ErrInvalidSubCategoryName
	}

	subCategory, err := s.GetBySlug(subCategorySlug)
	if err != nil {
		return nil, err
	}

	subject, err := s.subjectRepo.GetByID(req.SubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	newSlug := makeSubCategorySlug(subject.Slug, req.Name)

	exists, err := s.subCategoryRepo.ExistsBySlug(newSlug, subCategory.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSubCategoryExists
	}

	subCategory.SubjectID = req.SubjectID
	subCategory.Name = req.Name
	subCategory.Slug = newSlug
	subCategory.Subject = nil
	if err := s.subCategoryRepo.Update(subCategory); err != nil {
		return nil, err
	}

	return subCategory, nil
}

// Delete 删除子分类
func (s *SubCategoryService) Delete(subCategorySlug string) error {
	affected, err := s.subCategoryRepo.DeleteBySlug(subCategorySlug)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubCategoryNotFound
	}
	return nil
}
