package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/repository"
	"github.com/padhaihub/padhai_go_server/internal/testutil"
)

func newPurchaseService(db *gorm.DB) *PurchaseService {
	return NewPurchaseService(
		repository.NewPurchaseRepository(db),
		repository.NewContentRepository(db),
		repository.NewUserRepository(db),
		5,
	)
}

func setupPurchaseRefs(t *testing.T, db *gorm.DB) (*model.User, *model.Content) {
	t.Helper()

	user := testutil.TestUser(t, db)
	category := testutil.TestMainCategory(t, db, "Class 10")
	subject := testutil.TestSubject(t, db, "Mathematics", category.ID)
	subCategory := testutil.TestSubCategory(t, db, subject, "MCQ")
	content := testutil.TestContent(t, db, "Algebra Basics", category.ID, subject.ID, subCategory.ID,
		testutil.WithPrice(49))
	return user, content
}

func TestPurchaseService_Create_SnapshotsDownloadLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, _ := setupPurchaseRefs(t, db)

	category := testutil.TestMainCategory(t, db, "Class 9")
	subject := testutil.TestSubject(t, db, "Science", category.ID)
	subCategory := testutil.TestSubCategory(t, db, subject, "MCQ")
	content := testutil.TestContent(t, db, "Biology Notes", category.ID, subject.ID, subCategory.ID,
		testutil.WithDownloadLimit(8))

	purchase, err := service.Create(&dto.CreatePurchaseRequest{
		UserID:    user.ID,
		ContentID: content.ID,
		PricePaid: 49,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, purchase.DownloadLimit)
	assert.Equal(t, 8, purchase.DownloadsRemaining)
	assert.Equal(t, model.PurchaseStatusCompleted, purchase.Status)

	// 之后改内容上的限制不影响已有购买
	content.DownloadLimit = 2
	require.NoError(t, db.Save(content).Error)

	got, err := repository.NewPurchaseRepository(db).GetByID(purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.DownloadLimit)
}

func TestPurchaseService_Create_DefaultDownloadLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)

	// 内容未设置下载上限时使用默认值
	purchase, err := service.Create(&dto.CreatePurchaseRequest{
		UserID:    user.ID,
		ContentID: content.ID,
		PricePaid: 49,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, purchase.DownloadLimit)
	assert.Equal(t, 5, purchase.DownloadsRemaining)
}

func TestPurchaseService_Create_ContentNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user := testutil.TestUser(t, db)

	_, err := service.Create(&dto.CreatePurchaseRequest{
		UserID:    user.ID,
		ContentID: 9999,
	})
	assert.Equal(t, ErrContentNotFound, err)
}

func TestPurchaseService_Create_UserNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	_, content := setupPurchaseRefs(t, db)

	_, err := service.Create(&dto.CreatePurchaseRequest{
		UserID:    9999,
		ContentID: content.ID,
	})
	assert.Equal(t, ErrUserNotFound, err)
}

func TestPurchaseService_Create_DuplicatePurchasesIndependent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)

	first, err := service.Create(&dto.CreatePurchaseRequest{UserID: user.ID, ContentID: content.ID})
	require.NoError(t, err)
	second, err := service.Create(&dto.CreatePurchaseRequest{UserID: user.ID, ContentID: content.ID})
	require.NoError(t, err)

	// 重复购买各自持有独立配额
	_, err = service.Download(user.ID, first.ID)
	require.NoError(t, err)

	got, err := repository.NewPurchaseRepository(db).GetByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.DownloadsRemaining)
}

func TestPurchaseService_ListByUser_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user := testutil.TestUser(t, db)

	// 没有购买记录返回空列表而不是错误
	items, err := service.ListByUser(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPurchaseService_ListByUser_WithContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)

	testutil.TestPurchase(t, db, user.ID, content.ID)

	items, err := service.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Content)
	assert.Equal(t, content.Title, items[0].Content.Title)
	assert.Equal(t, content.PdfURL, items[0].Content.PdfURL)
}

func TestPurchaseService_ListByUser_OnlyOwnPurchases(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)
	other := testutil.TestUser(t, db)

	testutil.TestPurchase(t, db, user.ID, content.ID)
	testutil.TestPurchase(t, db, other.ID, content.ID)

	items, err := service.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPurchaseService_Download(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)

	purchase := testutil.TestPurchase(t, db, user.ID, content.ID, testutil.WithQuota(3, 3))

	resp, err := service.Download(user.ID, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, content.PdfURL, resp.PdfURL)
	assert.Equal(t, 2, resp.DownloadsRemaining)
}

func TestPurchaseService_Download_NotOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)
	other := testutil.TestUser(t, db)

	purchase := testutil.TestPurchase(t, db, user.ID, content.ID)

	// 他人的购买记录按不存在处理
	_, err := service.Download(other.ID, purchase.ID)
	assert.Equal(t, ErrPurchaseNotFound, err)
}

func TestPurchaseService_Download_QuotaExhausted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)

	purchase := testutil.TestPurchase(t, db, user.ID, content.ID, testutil.WithQuota(2, 2))

	for i := 0; i < 2; i++ {
		_, err := service.Download(user.ID, purchase.ID)
		require.NoError(t, err)
	}

	_, err := service.Download(user.ID, purchase.ID)
	assert.Equal(t, ErrQuotaExceeded, err)

	// 配额不会减到负数
	got, err := repository.NewPurchaseRepository(db).GetByID(purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.DownloadsRemaining)
}

func TestPurchaseService_Download_LastRemaining(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)

	purchase := testutil.TestPurchase(t, db, user.ID, content.ID, testutil.WithRemaining(1))

	// 只剩一次配额时两次请求只能成功一次
	resp, err := service.Download(user.ID, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.DownloadsRemaining)

	_, err = service.Download(user.ID, purchase.ID)
	assert.Equal(t, ErrQuotaExceeded, err)
}

func TestPurchaseService_Download_PurchaseNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)

	_, err := service.Download(1, 9999)
	assert.Equal(t, ErrPurchaseNotFound, err)
}

func TestPurchaseService_Download_ContentDeleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)

	purchase := testutil.TestPurchase(t, db, user.ID, content.ID, testutil.WithQuota(3, 3))

	require.NoError(t, db.Delete(content).Error)

	// 配额扣减先于取内容，内容被删时这次配额已经消耗
	_, err := service.Download(user.ID, purchase.ID)
	assert.Equal(t, ErrContentUnavailable, err)

	got, err := repository.NewPurchaseRepository(db).GetByID(purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.DownloadsRemaining)
}

func TestPurchaseService_Download_BlankPdfURL(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newPurchaseService(db)
	user, content := setupPurchaseRefs(t, db)

	purchase := testutil.TestPurchase(t, db, user.ID, content.ID, testutil.WithQuota(3, 3))

	require.NoError(t, db.Model(content).Update("pdf_url", "").Error)

	// 记录还在但地址为空，和内容被删同样处理，配额照样消耗
	_, err := service.Download(user.ID, purchase.ID)
	assert.Equal(t, ErrContentUnavailable, err)

	got, err := repository.NewPurchaseRepository(db).GetByID(purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.DownloadsRemaining)
}

func TestPurchaseRepository_ConsumeDownload_Conditional(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := repository.NewPurchaseRepository(db)
	user, content := setupPurchaseRefs(t, db)

	purchase := testutil.TestPurchase(t, db, user.ID, content.ID, testutil.WithRemaining(1))

	// 条件更新保证检查和扣减原子，第二次不命中任何行
	ok, err := repo.ConsumeDownload(purchase.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ConsumeDownload(purchase.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
