package repository

import (
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(pkg *model.Package) error {
	return r.db.Create(pkg).Error
}

// Count 套餐总数（创建时检查全局上限用）
func (r *PackageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Package{}).Count(&count).Error
	return count, err
}

func (r *PackageRepository) GetBySlug(slug string) (*model.Package, error) {
	var pkg model.Package
	err := r.db.Where("slug = ?", slug).First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) ExistsBySlug(slug string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&model.Package{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *PackageRepository) Update(pkg *model.Package) error {
	return r.db.Save(pkg).Error
}

func (r *PackageRepository) DeleteBySlug(slug string) (int64, error) {
	res := r.db.Where("slug = ?", slug).Delete(&model.Package{})
	return res.RowsAffected, res.Error
}

// ListAll 全部套餐，创建时间倒序
func (r *PackageRepository) ListAll() ([]*model.Package, error) {
	var pkgs []*model.Package
	err := r.db.Order("created_at DESC").Find(&pkgs).Error
	return pkgs, err
}
