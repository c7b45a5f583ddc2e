package repository

import (
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
)

var streamSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
}

type StreamRepository struct {
	db *gorm.DB
}

func NewStreamRepository(db *gorm.DB) *StreamRepository {
	return &StreamRepository{db: db}
}

func (r *StreamRepository) Create(stream *model.Stream) error {
	return r.db.Create(stream).Error
}

func (r *StreamRepository) GetByID(id int64) (*model.Stream, error) {
	var stream model.Stream
	err := r.db.Where("id = ?", id).First(&stream).Error
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

func (r *StreamRepository) GetBySlug(slug string) (*model.Stream, error) {
	var stream model.Stream
	err := r.db.Preload("MainCategory").Where("slug = ?", slug).First(&stream).Error
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

func (r *StreamRepository) ExistsBySlug(slug string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&model.Stream{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *StreamRepository) Update(stream *model.Stream) error {
	return r.db.Save(stream).Error
}

func (r *StreamRepository) DeleteBySlug(slug string) (int64, error) {
	res := r.db.Where("slug = ?", slug).Delete(&model.Stream{})
	return res.RowsAffected, res.Error
}

// List 选科列表（搜索 + 分页 + 排序），附带所属班级
func (r *StreamRepository) List(search string, page, limit int, sort, order string) ([]*model.Stream, int64, error) {
	var streams []*model.Stream
	var total int64

	query := r.db.Model(&model.Stream{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy, err := orderClause(sort, order, streamSortColumns)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("MainCategory").Order(orderBy).Offset(offset).Limit(limit).Find(&streams).Error; err != nil {
		return nil, 0, err
	}

	return streams, total, nil
}
