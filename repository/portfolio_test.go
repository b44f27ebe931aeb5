package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stockfolio/models"
)

func TestPortfolioJoin(t *testing.T) {
	db := setupDB(t)
	repo := PortfolioRepository{DB: db}

	user := seedUser(t, db, "trader42")
	other := seedUser(t, db, "trader43")
	apple := seedStock(t, db, "AAPL", "Apple Inc.")
	nvidia := seedStock(t, db, "NVDA", "NVIDIA Corporation")
	seedStock(t, db, "MSFT", "Microsoft Corporation")

	for _, stockID := range []uint{apple.ID, nvidia.ID} {
		_, err := repo.Create(models.Portfolio{UserID: user.ID, StockID: stockID})
		require.NoError(t, err)
	}
	_, err := repo.Create(models.Portfolio{UserID: other.ID, StockID: apple.ID})
	require.NoError(t, err)

	stocks, err := repo.GetUserPortfolio(user.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"AAPL", "NVDA"}, symbols(stocks))

	stocks, err = repo.GetUserPortfolio(other.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL"}, symbols(stocks))
}

func TestPortfolioDelete(t *testing.T) {
	db := setupDB(t)
	repo := PortfolioRepository{DB: db}

	user := seedUser(t, db, "trader42")
	apple := seedStock(t, db, "AAPL", "Apple Inc.")
	nvidia := seedStock(t, db, "NVDA", "NVIDIA Corporation")

	for _, stockID := range []uint{apple.ID, nvidia.ID} {
		_, err := repo.Create(models.Portfolio{UserID: user.ID, StockID: stockID})
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(user.ID, "AAPL"))

	stocks, err := repo.GetUserPortfolio(user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"NVDA"}, symbols(stocks))
}

func TestPortfolioUniquePair(t *testing.T) {
	db := setupDB(t)
	repo := PortfolioRepository{DB: db}

	user := seedUser(t, db, "trader42")
	apple := seedStock(t, db, "AAPL", "Apple Inc.")

	_, err := repo.Create(models.Portfolio{UserID: user.ID, StockID: apple.ID})
	require.NoError(t, err)

	// the unique index rejects a second row for the same pair, so the
	// controller's check-then-insert cannot race into duplicates
	_, err = repo.Create(models.Portfolio{UserID: user.ID, StockID: apple.ID})
	require.Error(t, err)
}
