package repository

import (
	"gorm.io/gorm"

	"stockfolio/models"
)

type PortfolioRepository struct {
	DB *gorm.DB
}

// GetUserPortfolio returns the stocks a user tracks, not the raw join rows.
func (r PortfolioRepository) GetUserPortfolio(userID uint) ([]models.Stock, error) {
	var stocks []models.Stock
	err := r.DB.
		Joins("JOIN portfolios ON portfolios.stock_id = stocks.id").
		Where("portfolios.user_id = ?", userID).
		Find(&stocks).Error
	return stocks, err
}

// Create inserts a (user, stock) association. Duplicate checking is the
// caller's job; the unique index on the pair is the backstop.
func (r PortfolioRepository) Create(entry models.Portfolio) (*models.Portfolio, error) {
	if err := r.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

// Delete removes the user's association with the stock whose symbol matches
// exactly. Case-insensitive resolution happens at the caller.
func (r PortfolioRepository) Delete(userID uint, symbol string) error {
	return r.DB.
		Where("user_id = ? AND stock_id IN (?)", userID,
			r.DB.Model(&models.Stock{}).Select("id").Where("symbol = ?", symbol),
		).
		Delete(&models.Portfolio{}).Error
}
