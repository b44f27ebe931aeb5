package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockfolio/models"
)

func TestCommentCreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := CommentRepository{DB: db}

	stock := seedStock(t, db, "AAPL", "Apple Inc.")
	user := seedUser(t, db, "trader42")

	created, err := repo.Create(models.Comment{
		Title:   "Solid quarter",
		Content: "Services revenue keeps climbing.",
		StockID: stock.ID,
		UserID:  user.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Solid quarter", got.Title)
	require.Equal(t, "trader42", got.User.Username)
	require.Equal(t, stock.ID, got.StockID)
}

func TestCommentUpdateTouchesOnlyTitleAndContent(t *testing.T) {
	db := setupDB(t)
	repo := CommentRepository{DB: db}

	stock := seedStock(t, db, "AAPL", "Apple Inc.")
	user := seedUser(t, db, "trader42")

	created, err := repo.Create(models.Comment{
		Title:   "Before",
		Content: "Original take.",
		StockID: stock.ID,
		UserID:  user.ID,
	})
	require.NoError(t, err)

	before, err := repo.GetByID(created.ID)
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, "After", "Revised take.")
	require.NoError(t, err)
	require.NotNil(t, updated)

	after, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "After", after.Title)
	require.Equal(t, "Revised take.", after.Content)
	require.Equal(t, user.ID, after.UserID)
	require.True(t, after.CreatedAt.Equal(before.CreatedAt))
}

func TestCommentUpdateNotFound(t *testing.T) {
	db := setupDB(t)
	repo := CommentRepository{DB: db}

	comment, err := repo.Update(9999, "Title", "Content")
	require.NoError(t, err)
	require.Nil(t, comment)
}

func TestCommentDelete(t *testing.T) {
	db := setupDB(t)
	repo := CommentRepository{DB: db}

	stock := seedStock(t, db, "AAPL", "Apple Inc.")
	user := seedUser(t, db, "trader42")

	created, err := repo.Create(models.Comment{
		Title:   "Going away",
		Content: "Bye.",
		StockID: stock.ID,
		UserID:  user.ID,
	})
	require.NoError(t, err)

	deleted, err := repo.Delete(created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	deleted, err = repo.Delete(created.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestCommentGetAllFilterAndSort(t *testing.T) {
	db := setupDB(t)
	repo := CommentRepository{DB: db}

	apple := seedStock(t, db, "AAPL", "Apple Inc.")
	nvidia := seedStock(t, db, "NVDA", "NVIDIA Corporation")
	user := seedUser(t, db, "trader42")

	older := models.Comment{Title: "Older", Content: "First take.", StockID: apple.ID, UserID: user.ID}
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&older).Error)

	newer := models.Comment{Title: "Newer", Content: "Second take.", StockID: apple.ID, UserID: user.ID}
	require.NoError(t, db.Create(&newer).Error)

	other := models.Comment{Title: "Elsewhere", Content: "Different stock.", StockID: nvidia.ID, UserID: user.ID}
	require.NoError(t, db.Create(&other).Error)

	appleComments, err := repo.GetAll(CommentQuery{Symbol: "AAPL"})
	require.NoError(t, err)
	require.Len(t, appleComments, 2)

	newestFirst, err := repo.GetAll(CommentQuery{Symbol: "AAPL", IsDescending: true})
	require.NoError(t, err)
	require.Equal(t, "Newer", newestFirst[0].Title)
	require.Equal(t, "Older", newestFirst[1].Title)

	all, err := repo.GetAll(CommentQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
}
