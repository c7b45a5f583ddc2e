package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/repository"
	"github.com/padhaihub/padhai_go_server/internal/testutil"
)

func TestStreamService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := NewStreamService(
		repository.NewStreamRepository(db),
		repository.NewMainCategoryRepository(db),
	)

	category := testutil.TestMainCategory(t, db, "Class 11")

	stream, err := service.Create(&dto.CreateStreamRequest{
		Name:           "Science",
		MainCategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "science", stream.Slug)
	assert.Equal(t, category.ID, stream.MainCategoryID)
}

func TestStreamService_Create_CategoryNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := NewStreamService(
		repository.NewStreamRepository(db),
		repository.NewMainCategoryRepository(db),
	)

	_, err := service.Create(&dto.CreateStreamRequest{
		Name:           "Science",
		MainCategoryID: 9999,
	})
	assert.Equal(t, ErrCategoryNotFound, err)
}

func TestStreamService_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := NewStreamService(
		repository.NewStreamRepository(db),
		repository.NewMainCategoryRepository(db),
	)

	category := testutil.TestMainCategory(t, db, "Class 11")
	testutil.TestStream(t, db, "Science", category.ID)

	_, err := service.Create(&dto.CreateStreamRequest{
		Name:           "SCIENCE",
		MainCategoryID: category.ID,
	})
	assert.Equal(t, ErrStreamExists, err)
}

func TestStreamService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := NewStreamService(
		repository.NewStreamRepository(db),
		repository.NewMainCategoryRepository(db),
	)

	category := testutil.TestMainCategory(t, db, "Class 11")
	other := testutil.TestMainCategory(t, db, "Class 12")
	testutil.TestStream(t, db, "Science", category.ID)

	updated, err := service.Update("science", &dto.UpdateStreamRequest{
		Name:           "Commerce",
		MainCategoryID: other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "commerce", updated.Slug)
	assert.Equal(t, other.ID, updated.MainCategoryID)
}

func TestStreamService_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := NewStreamService(
		repository.NewStreamRepository(db),
		repository.NewMainCategoryRepository(db),
	)

	err := service.Delete("nonexistent")
	assert.Equal(t, ErrStreamNotFound, err)
}
