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
	ErrPackageNotFound     = errors.New("套餐不存在")
	ErrPackageExists       = errors.New("套餐已存在")
	ErrPackageLimitReached = errors.New("套餐数量已达上限")
	ErrPackageContentBad   = errors.New("套餐引用的内容不存在")
)

type PackageService struct {
	packageRepo *repository.PackageRepository
	contentRepo *repository.ContentRepository
	limit       int64 // 全局套餐数量上限
}

func NewPackageService(packageRepo *repository.PackageRepository, contentRepo *repository.ContentRepository, limit int64) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		contentRepo: contentRepo,
		limit:       limit,
	}
}

// validateContents 套餐引用的内容必须全部存在
func (s *PackageService) validateContents(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	count, err := s.contentRepo.CountByIDs(unique)
	if err != nil {
		return err
	}
	if count != int64(len(unique)) {
		return ErrPackageContentBad
	}
	return nil
}

// Create 创建套餐，数量上限只在创建时检查
func (s *PackageService) Create(req *dto.CreatePackageRequest) (*model.Package, error) {
	count, err := s.packageRepo.Count()
	if err != nil {
		return nil, err
	}
	if count >= s.limit {
		return nil, ErrPackageLimitReached
	}

	if err := s.validateContents(req.Contents); err != nil {
		return nil, err
	}

	newSlug := slug.Make(req.Title)

	exists, err := s.packageRepo.ExistsBySlug(newSlug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPackageExists
	}

	pkg := &model.Package{
		Title:          req.Title,
		Slug:           newSlug,
		Description:    req.Description,
		Price:          req.Price,
		DurationInDays: req.DurationInDays,
		Contents:       model.Int64Array(req.Contents),
		Features:       model.StringArray(req.Features),
		Image:          req.Image,
		IsActive:       true,
	}
	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// List 全部套餐
func (s *PackageService) List() ([]*model.Package, error) {
	return s.packageRepo.ListAll()
}

// GetBySlug 按 slug 查询套餐
func (s *PackageService) GetBySlug(pkgSlug string) (*model.Package, error) {
	pkg, err := s.packageRepo.GetBySlug(pkgSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

// Update 更新套餐，不重新检查数量上限
func (s *PackageService) Update(pkgSlug string, req *dto.UpdatePackageRequest) (*model.Package, error) {
	pkg, err := s.GetBySlug(pkgSlug)
	if err != nil {
		return nil, err
	}

	if err := s.validateContents(req.Contents); err != nil {
		return nil, err
	}

	newSlug := slug.Make(req.Title)

	exists, err := s.packageRepo.ExistsBySlug(newSlug, pkg.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPackageExists
	}

	pkg.Title = req.Title
	pkg.Slug = newSlug
	pkg.Description = req.Description
	pkg.Price = req.Price
	pkg.DurationInDays = req.DurationInDays
	pkg.Contents = model.Int64Array(req.Contents)
	pkg.Features = model.StringArray(req.Features)
	pkg.Image = req.Image
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Delete 删除套餐
func (s *PackageService) Delete(pkgSlug string) error {
	affected, err := s.packageRepo.DeleteBySlug(pkgSlug)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPackageNotFound
	}
	return nil
}
