package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/internal/model"
	"github.com/padhaihub/padhai_go_server/internal/pkg/slug"
)

var fixtureSeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&fixtureSeq, 1)
}

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	seq := nextSeq()
	user := &model.User{
		Name:         fmt.Sprintf("Test User %d", seq),
		Email:        fmt.Sprintf("test_%d_%d@example.com", time.Now().UnixNano(), seq),
		Phone:        fmt.Sprintf("9%09d", seq),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456", // bcrypt hash placeholder
		Role:         model.RoleStudent,
		IsVerified:   true,
		Status:       model.UserStatusActive,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithRole 设置用户角色
func WithRole(role string) func(*model.User) {
	return func(u *model.User) {
		u.Role = role
	}
}

// WithUserStatus 设置用户状态
func WithUserStatus(status string) func(*model.User) {
	return func(u *model.User) {
		u.Status = status
	}
}

// TestMainCategory 创建测试班级
func TestMainCategory(t *testing.T, db *gorm.DB, title string) *model.MainCategory {
	t.Helper()

	category := &model.MainCategory{
		Title: title,
		Slug:  slug.MakeClassSlug(title),
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create test main category: %v", err)
	}

	return category
}

// TestStream 创建测试选科
func TestStream(t *testing.T, db *gorm.DB, name string, mainCategoryID int64) *model.Stream {
	t.Helper()

	stream := &model.Stream{
		Name:           name,
		Slug:           slug.MakeClassSlug(name),
		MainCategoryID: mainCategoryID,
	}

	if err := db.Create(stream).Error; err != nil {
		t.Fatalf("Failed to create test stream: %v", err)
	}

	return stream
}

// TestSubject 创建测试学科
func TestSubject(t *testing.T, db *gorm.DB, name string, mainCategoryID int64, opts ...func(*model.Subject)) *model.Subject {
	t.Helper()

	subject := &model.Subject{
		Name:           name,
		Slug:           slug.Make(name),
		MainCategoryID: mainCategoryID,
	}

	for _, opt := range opts {
		opt(subject)
	}

	if err := db.Create(subject).Error; err != nil {
		t.Fatalf("Failed to create test subject: %v", err)
	}

	return subject
}

// WithStream 设置学科的选科
func WithStream(streamID int64) func(*model.Subject) {
	return func(s *model.Subject) {
		s.StreamID = &streamID
	}
}

// TestSubCategory 创建测试子分类
func TestSubCategory(t *testing.T, db *gorm.DB, subject *model.Subject, name string) *model.SubCategory {
	t.Helper()

	subCategory := &model.SubCategory{
		SubjectID: subject.ID,
		Name:      name,
		Slug:      subject.Slug + "-" + slug.Make(name),
	}

	if err := db.Create(subCategory).Error; err != nil {
		t.Fatalf("Failed to create test sub-category: %v", err)
	}

	return subCategory
}

// TestContent 创建测试内容
func TestContent(t *testing.T, db *gorm.DB, title string, mainCategoryID, subjectID, subCategoryID int64, opts ...func(*model.Content)) *model.Content {
	t.Helper()

	content := &model.Content{
		Title:          title,
		Slug:           slug.Make(title),
		MainCategoryID: mainCategoryID,
		SubjectID:      subjectID,
		SubCategoryID:  subCategoryID,
		PdfURL:         fmt.Sprintf("https://cdn.example.com/pdfs/%d.pdf", nextSeq()),
		IsRestricted:   true,
	}

	for _, opt := range opts {
		opt(content)
	}

	if err := db.Create(content).Error; err != nil {
		t.Fatalf("Failed to create test content: %v", err)
	}

	return content
}

// WithContentStream 设置内容的选科
func WithContentStream(streamID int64) func(*model.Content) {
	return func(c *model.Content) {
		c.StreamID = &streamID
	}
}

// WithPrice 设置内容价格
func WithPrice(price float64) func(*model.Content) {
	return func(c *model.Content) {
		c.Price = price
	}
}

// WithDownloadLimit 设置内容的下载次数
func WithDownloadLimit(limit int) func(*model.Content) {
	return func(c *model.Content) {
		c.DownloadLimit = limit
	}
}

// WithPdfURL 设置内容的 PDF 地址
func WithPdfURL(url string) func(*model.Content) {
	return func(c *model.Content) {
		c.PdfURL = url
	}
}

// TestPackage 创建测试套餐
func TestPackage(t *testing.T, db *gorm.DB, title string, contents ...int64) *model.Package {
	t.Helper()

	pkg := &model.Package{
		Title:          title,
		Slug:           slug.Make(title),
		Price:          999,
		DurationInDays: 365,
		Contents:       contents,
		IsActive:       true,
	}

	if err := db.Create(pkg).Error; err != nil {
		t.Fatalf("Failed to create test package: %v", err)
	}

	return pkg
}

// TestPurchase 创建测试购买记录
func TestPurchase(t *testing.T, db *gorm.DB, userID, contentID int64, opts ...func(*model.Purchase)) *model.Purchase {
	t.Helper()

	purchase := &model.Purchase{
		UserID:             userID,
		ContentID:          contentID,
		PurchasedAt:        time.Now(),
		PricePaid:          99,
		Status:             model.PurchaseStatusCompleted,
		DownloadLimit:      5,
		DownloadsRemaining: 5,
	}

	for _, opt := range opts {
		opt(purchase)
	}

	if err := db.Create(purchase).Error; err != nil {
		t.Fatalf("Failed to create test purchase: %v", err)
	}

	return purchase
}

// WithRemaining 设置剩余下载次数
func WithRemaining(remaining int) func(*model.Purchase) {
	return func(p *model.Purchase) {
		p.DownloadsRemaining = remaining
	}
}

// WithQuota 同时设置配额上限和剩余次数
func WithQuota(limit, remaining int) func(*model.Purchase) {
	return func(p *model.Purchase) {
		p.DownloadLimit = limit
		p.DownloadsRemaining = remaining
	}
}
