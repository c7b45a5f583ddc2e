package repository

import (
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
)

var contentSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"price":     "price",
}

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) Create(content *model.Content) error {
	return r.db.Create(content).Error
}

func (r *ContentRepository) GetByID(id int64) (*model.Content, error) {
	var content model.Content
	err := r.db.Where("id = ?", id).First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *ContentRepository) GetBySlug(slug string) (*model.Content, error) {
	var content model.Content
	err := r.db.
		Preload("MainCategory").
		Preload("Subject").
		Preload("SubCategory").
		Preload("Stream").
		Where("slug = ?", slug).First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// CountByIDs 统计给定 ID 中实际存在的内容数
func (r *ContentRepository) CountByIDs(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&model.Content{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *ContentRepository) ExistsBySlug(slug string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&model.Content{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *ContentRepository) Update(content *model.Content) error {
	return r.db.Save(content).Error
}

func (r *ContentRepository) DeleteBySlug(slug string) (int64, error) {
	res := r.db.Where("slug = ?", slug).Delete(&model.Content{})
	return res.RowsAffected, res.Error
}

// List 内容列表（搜索 + 分页 + 排序），附带完整分类信息
func (r *ContentRepository) List(search string, page, limit int, sort, order string) ([]*model.Content, int64, error) {
	var contents []*model.Content
	var total int64

	query := r.db.Model(&model.Content{})
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy, err := orderClause(sort, order, contentSortColumns)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err = query.
		Preload("MainCategory").
		Preload("Subject").
		Preload("SubCategory").
		Preload("Stream").
		Order(orderBy).Offset(offset).Limit(limit).Find(&contents).Error
	if err != nil {
		return nil, 0, err
	}

	return contents, total, nil
}
