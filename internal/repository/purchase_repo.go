package repository

import (
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) Create(purchase *model.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *PurchaseRepository) GetByID(id int64) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Where("id = ?", id).First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// ListByUser 用户的全部购买记录，附带内容信息，购买时间倒序
func (r *PurchaseRepository) ListByUser(userID int64) ([]*model.Purchase, error) {
	var purchases []*model.Purchase
	err := r.db.Preload("Content").
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&purchases).Error
	return purchases, err
}

// ConsumeDownload 原子扣减一次下载配额
// 条件更新保证检查和扣减是同一个操作：剩余次数为 0 时不会命中任何行，
// 两个并发请求在只剩一次配额时最多只有一个成功
func (r *PurchaseRepository) ConsumeDownload(id int64) (bool, error) {
	res := r.db.Model(&model.Purchase{}).
		Where("id = ? AND downloads_remaining > 0", id).
		Update("downloads_remaining", gorm.Expr("downloads_remaining - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
