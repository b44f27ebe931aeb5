package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"stockfolio/models"
)

// StockQuery carries the filter, sort and pagination window for stock
// listings. Pagination is 1-based.
type StockQuery struct {
	CompanyName  string `form:"company_name"`
	Symbol       string `form:"symbol"`
	SortBy       string `form:"sort_by"`
	IsDescending bool   `form:"is_descending"`
	PageNumber   int    `form:"page_number,default=1"`
	PageSize     int    `form:"page_size,default=20"`
}

type StockRepository struct {
	DB *gorm.DB
}

// GetAll lists stocks matching the query. Substring filters are
// case-sensitive; order is store-defined unless SortBy is "symbol".
func (r StockRepository) GetAll(query StockQuery) ([]models.Stock, error) {
	tx := r.DB.Model(&models.Stock{}).Preload("Comments").Preload("Comments.User")

	if strings.TrimSpace(query.CompanyName) != "" {
		tx = tx.Where("company_name LIKE ?", "%"+query.CompanyName+"%")
	}

	if strings.TrimSpace(query.Symbol) != "" {
		tx = tx.Where("symbol LIKE ?", "%"+query.Symbol+"%")
	}

	if strings.EqualFold(query.SortBy, "symbol") {
		if query.IsDescending {
			tx = tx.Order("symbol DESC")
		} else {
			tx = tx.Order("symbol ASC")
		}
	}

	offset := (query.PageNumber - 1) * query.PageSize

	var stocks []models.Stock
	err := tx.Offset(offset).Limit(query.PageSize).Find(&stocks).Error
	return stocks, err
}

func (r StockRepository) GetByID(id uint) (*models.Stock, error) {
	var stock models.Stock
	err := r.DB.Preload("Comments").Preload("Comments.User").First(&stock, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &stock, nil
}

// GetBySymbol matches exactly and case-sensitively; callers that want
// case-insensitive lookups normalize before calling.
func (r StockRepository) GetBySymbol(symbol string) (*models.Stock, error) {
	var stock models.Stock
	err := r.DB.Where("symbol = ?", symbol).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &stock, nil
}

func (r StockRepository) Create(stock models.Stock) (*models.Stock, error) {
	if err := r.DB.Create(&stock).Error; err != nil {
		return nil, err
	}

	return &stock, nil
}

// Update overwrites every mutable attribute of the stock.
func (r StockRepository) Update(id uint, fields models.Stock) (*models.Stock, error) {
	var stock models.Stock
	err := r.DB.First(&stock, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	stock.Symbol = fields.Symbol
	stock.CompanyName = fields.CompanyName
	stock.Purchase = fields.Purchase
	stock.LastDiv = fields.LastDiv
	stock.Industry = fields.Industry
	stock.MarketCap = fields.MarketCap

	if err := r.DB.Save(&stock).Error; err != nil {
		return nil, err
	}

	return &stock, nil
}

// Delete removes the stock and returns the removed entity.
func (r StockRepository) Delete(id uint) (*models.Stock, error) {
	var stock models.Stock
	err := r.DB.First(&stock, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	if err := r.DB.Delete(&stock).Error; err != nil {
		return nil, err
	}

	return &stock, nil
}

func (r StockRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Stock{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
