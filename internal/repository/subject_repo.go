package repository

import (
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
)

var subjectSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
}

type SubjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.db.Create(subject).Error
}

func (r *SubjectRepository) GetByID(id int64) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.Where("id = ?", id).First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) GetBySlug(slug string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.Preload("MainCategory").Preload("Stream").Where("slug = ?", slug).First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) ExistsBySlug(slug string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&model.Subject{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.db.Save(subject).Error
}

func (r *SubjectRepository) DeleteBySlug(slug string) (int64, error) {
	res := r.db.Where("slug = ?", slug).Delete(&model.Subject{})
	return res.RowsAffected, res.Error
}

// List 学科列表（搜索 + 分页 + 排序），附带班级和选科
func (r *SubjectRepository) List(search string, page, limit int, sort, order string) ([]*model.Subject, int64, error) {
	var subjects []*model.Subject
	var total int64

	query := r.db.Model(&model.Subject{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy, err := orderClause(sort, order, subjectSortColumns)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("MainCategory").Preload("Stream").Order(orderBy).Offset(offset).Limit(limit).Find(&subjects).Error; err != nil {
		return nil, 0, err
	}

	return subjects, total, nil
}
