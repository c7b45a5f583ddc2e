package repository

import (
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
)

type SubCategoryRepository struct {
	db *gorm.DB
}

func NewSubCategoryRepository(db *gorm.DB) *SubCategoryRepository {
	return &SubCategoryRepository{db: db}
}

func (r *SubCategoryRepository) Create(subCategory *model.SubCategory) error {
	return r.db.Create(subCategory).Error
}

func (r *SubCategoryRepository) GetByID(id int64) (*model.SubCategory, error) {
	var subCategory model.SubCategory
	err := r.db.Where("id = ?", id).First(&subCategory).Error
	if err != nil {
		return nil, err
	}
	return &subCategory, nil
}

func (r *SubCategoryRepository) GetBySlug(slug string) (*model.SubCategory, error) {
	var subCategory model.SubCategory
	err := r.db.Preload("Subject").Where("slug = ?", slug).First(&subCategory).Error
	if err != nil {
		return nil, err
	}
	return &subCategory, nil
}

func (r *SubCategoryRepository) ExistsBySlug(slug string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&model.SubCategory{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *SubCategoryRepository) Update(subCategory *model.SubCategory) error {
	return r.db.Save(subCategory).Error
}

func (r *SubCategoryRepository) DeleteBySlug(slug string) (int64, error) {
	res := r.db.Where("slug = ?", slug).Delete(&model.SubCategory{})
	return res.RowsAffected, res.Error
}

// List 子分类列表，可按学科过滤，创建时间倒序
func (r *SubCategoryRepository) List(subjectID *int64) ([]*model.SubCategory, error) {
	var subCategories []*model.SubCategory

	query := r.db.Model(&model.SubCategory{}).Preload("Subject")
	if subjectID != nil {
		query = query.Where("subject_id = ?", *subjectID)
	}

	err := query.Order("created_at DESC").Find(&subCategories).Error
	return subCategories, err
}
