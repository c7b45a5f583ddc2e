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
	ErrCategoryNotFound = errors.New("班级不存在")
	ErrCategoryExists   = errors.New("班级已存在")
)

type MainCategoryService struct {
	categoryRepo *repository.MainCategoryRepository
}

func NewMainCategoryService(categoryRepo *repository.MainCategoryRepository) *MainCategoryService {
	return &MainCategoryService{categoryRepo: categoryRepo}
}

// Create 创建班级
// slug 由标题经班级规范化（去掉 "class" 和序数后缀）后生成
func (s *MainCategoryService) Create(req *dto.CreateMainCategoryRequest) (*model.MainCategory, error) {
	newSlug := slug.MakeClassSlug(req.Title)

	exists, err := s.categoryRepo.ExistsBySlug(newSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	category := &model.MainCategory{
		Title: req.Title,
		Slug:  newSlug,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

// List 班级列表
func (s *MainCategoryService) List(q *dto.ListQuery) ([]*model.MainCategory, int64, error) {
	if err := normalizeListQuery(q); err != nil {
		return nil, 0, err
	}
	return s.categoryRepo.List(q.Search, q.Page, q.Limit, q.Sort, q.Order)
}

// GetBySlug 按 slug 查询单个班级
func (s *MainCategoryService) GetBySlug(categorySlug string) (*model.MainCategory, error) {
	category, err := s.categoryRepo.GetBySlug(categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// Update 更新班级，slug 随标题重新生成
func (s *MainCategoryService) Update(categorySlug string, req *dto.UpdateMainCategoryRequest) (*model.MainCategory, error) {
	category, err := s.GetBySlug(categorySlug)
	if err != nil {
		return nil, err
	}

	newSlug := slug.MakeClassSlug(req.Title)

	// 与自身冲突不算冲突
	exists, err := s.categoryRepo.ExistsBySlug(newSlug, category.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	category.Title = req.Title
	category.Slug = newSlug
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete 删除班级（不做级联）
func (s *MainCategoryService) Delete(categorySlug string) error {
	affected, err := s.categoryRepo.DeleteBySlug(categorySlug)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
