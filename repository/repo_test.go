package repository

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stockfolio/models"
)

// setupDB connects to the database named by TEST_DATABASE_URL and resets the
// schema. Tests are skipped when the variable is unset.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set; skipping repository tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Stock{},
		&models.Comment{},
		&models.Portfolio{},
	))

	require.NoError(t, db.Exec(`TRUNCATE portfolios, comments, stocks, users RESTART IDENTITY CASCADE`).Error)

	return db
}

func seedStock(t *testing.T, db *gorm.DB, symbol, company string) models.Stock {
	t.Helper()

	stock := models.Stock{
		Symbol:      symbol,
		CompanyName: company,
		Purchase:    decimal.NewFromFloat(100.50),
		LastDiv:     decimal.NewFromFloat(1.25),
		Industry:    "Technology",
		MarketCap:   1000000000,
	}
	require.NoError(t, db.Create(&stock).Error)
	return stock
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
