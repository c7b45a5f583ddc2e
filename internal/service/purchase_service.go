package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/repository"
)

var (
	ErrPurchaseNotFound   = errors.New("购买记录不存在")
	ErrQuotaExceeded      = errors.New("下载次数已用完")
	ErrContentUnavailable = errors.New("内容已下架")
	ErrUserNotFound       = errors.New("用户不存在")
)

type PurchaseService struct {
	purchaseRepo *repository.PurchaseRepository
	contentRepo  *repository.ContentRepository
	userRepo     *repository.UserRepository
	// 内容未设置下载上限时使用的默认值
	defaultDownloadLimit int
}

func NewPurchaseService(
	purchaseRepo *repository.PurchaseRepository,
	contentRepo *repository.ContentRepository,
	userRepo *repository.UserRepository,
	defaultDownloadLimit int,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:         purchaseRepo,
		contentRepo:          contentRepo,
		userRepo:             userRepo,
		defaultDownloadLimit: defaultDownloadLimit,
	}
}

// Create 创建购买记录，下载上限在此刻从内容上快照
// 同一用户可以重复购买同一内容，每条记录的配额互相独立
func (s *PurchaseService) Create(req *dto.CreatePurchaseRequest) (*model.Purchase, error) {
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	content, err := s.contentRepo.GetByID(req.ContentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	limit := content.DownloadLimit
	if limit <= 0 {
		limit = s.defaultDownloadLimit
	}

	purchase := &model.Purchase{
		UserID:             req.UserID,
		ContentID:          req.ContentID,
		PurchasedAt:        time.Now(),
		PricePaid:          req.PricePaid,
		PaymentID:          req.PaymentID,
		Status:             model.PurchaseStatusCompleted,
		DownloadLimit:      limit,
		DownloadsRemaining: limit,
	}
	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// ListByUser 用户的购买列表，没有记录时返回空列表而不是错误
func (s *PurchaseService) ListByUser(userID int64) ([]*dto.PurchaseItem, error) {
	purchases, err := s.purchaseRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PurchaseItem, 0, len(purchases))
	for _, p := range purchases {
		item := &dto.PurchaseItem{
			ID:                 p.ID,
			ContentID:          p.ContentID,
			PurchasedAt:        p.PurchasedAt,
			PricePaid:          p.PricePaid,
			Status:             p.Status,
			DownloadLimit:      p.DownloadLimit,
			DownloadsRemaining: p.DownloadsRemaining,
			AccessExpiresAt:    p.AccessExpiresAt,
		}
		if p.Content != nil {
			item.Content = &dto.PurchaseContent{
				ID:     p.Content.ID,
				Title:  p.Content.Title,
				PdfURL: p.Content.PdfURL,
				Price:  p.Content.Price,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// Download 消耗一次下载配额并返回 PDF 地址
// 扣减先于取内容：配额是条件更新原子扣掉的，剩余为 0 时直接拒绝。
// 只能下载自己的购买记录，他人的记录按不存在处理
func (s *PurchaseService) Download(userID, purchaseID int64) (*dto.DownloadResponse, error) {
	purchase, err := s.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}

	if purchase.UserID != userID {
		return nil, ErrPurchaseNotFound
	}

	ok, err := s.purchaseRepo.ConsumeDownload(purchase.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrQuotaExceeded
	}

	content, err := s.contentRepo.GetByID(purchase.ContentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 配额已经扣掉，内容被删属于运营事故，照实返回
			return nil, ErrContentUnavailable
		}
		return nil, err
	}
	if content.PdfURL == "" {
		// 地址缺失同样在扣配额之后才能发现
		return nil, ErrContentUnavailable
	}

	return &dto.DownloadResponse{
		PdfURL: content.PdfURL,
		// 条件更新保证恰好扣掉一次，不必回表重读
		DownloadsRemaining: purchase.DownloadsRemaining - 1,
	}, nil
}
