package repository

import (
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
)

var mainCategorySortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
}

type MainCategoryRepository struct {
	db *gorm.DB
}

func NewMainCategoryRepository(db *gorm.DB) *MainCategoryRepository {
	return &MainCategoryRepository{db: db}
}

func (r *MainCategoryRepository) Create(category *model.MainCategory) error {
	return r.db.Create(category).Error
}

func (r *MainCategoryRepository) GetByID(id int64) (*model.MainCategory, error) {
	var category model.MainCategory
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *MainCategoryRepository) GetBySlug(slug string) (*model.MainCategory, error) {
	var category model.MainCategory
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ExistsBySlug 检查 slug 是否被其他记录占用（excludeID 为 0 表示不排除）
func (r *MainCategoryRepository) ExistsBySlug(slug string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&model.MainCategory{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *MainCategoryRepository) Update(category *model.MainCategory) error {
	return r.db.Save(category).Error
}

func (r *MainCategoryRepository) DeleteBySlug(slug string) (int64, error) {
	res := r.db.Where("slug = ?", slug).Delete(&model.MainCategory{})
	return res.RowsAffected, res.Error
}

// List 班级列表（搜索 + 分页 + 排序）
func (r *MainCategoryRepository) List(search string, page, limit int, sort, order string) ([]*model.MainCategory, int64, error) {
	var categories []*model.MainCategory
	var total int64

	query := r.db.Model(&model.MainCategory{})
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy, err := orderClause(sort, order, mainCategorySortColumns)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order(orderBy).Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}
