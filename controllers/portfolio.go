package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stockfolio/api"
	"stockfolio/models"
)

type PortfolioStore interface {
	GetUserPortfolio(userID uint) ([]models.Stock, error)
	Create(entry models.Portfolio) (*models.Portfolio, error)
	Delete(userID uint, symbol string) error
}

// StockFinder resolves a symbol through the external data provider. A nil
// result covers both "unknown symbol" and "provider unavailable".
type StockFinder interface {
	FindBySymbol(symbol string) *models.Stock
}

type PortfolioController struct {
	Portfolios PortfolioStore
	Stocks     StockStore
	Provider   StockFinder
	Logger     *zap.SugaredLogger
}

func (pc PortfolioController) GetPortfolio(c *gin.Context) {
	stocks, err := pc.Portfolios.GetUserPortfolio(CurrentUserID(c))
	if err != nil {
		pc.Logger.Errorf("Error getting portfolio: %v", err)
		api.ResultError(c, nil)
		return
	}

	api.ResultData(c, api.ToStockResponses(stocks))
}

func (pc PortfolioController) AddStock(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	userID := CurrentUserID(c)

	stock, err := pc.Stocks.GetBySymbol(symbol)
	if err != nil {
		pc.Logger.Errorf("Error getting stock %v: %v", symbol, err)
		api.ResultError(c, nil)
		return
	}

	if stock == nil {
		stock = pc.Provider.FindBySymbol(symbol)
		if stock == nil {
			api.ResultError(c, []string{"stockDoesNotExist"})
			return
		}

		stock, err = pc.Stocks.Create(*stock)
		if err != nil {
			pc.Logger.Errorf("Error creating stock %v: %v", symbol, err)
			api.ResultError(c, nil)
			return
		}
	}

	portfolio, err := pc.Portfolios.GetUserPortfolio(userID)
	if err != nil {
		pc.Logger.Errorf("Error getting portfolio: %v", err)
		api.ResultError(c, nil)
		return
	}

	for _, owned := range portfolio {
		if strings.EqualFold(owned.Symbol, symbol) {
			api.ResultError(c, []string{"duplicatePortfolioEntry"})
			return
		}
	}

	entry, err := pc.Portfolios.Create(models.Portfolio{
		UserID:  userID,
		StockID: stock.ID,
	})
	if err != nil {
		// The unique index turns the check-then-insert race into an error
		// here rather than a second row.
		pc.Logger.Errorf("Error creating portfolio entry for %v: %v", symbol, err)
		api.ResultError(c, nil)
		return
	}

	if entry == nil {
		api.ResultError(c, nil)
		return
	}

	api.ResultCreated(c, nil)
}

func (pc PortfolioController) RemoveStock(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	userID := CurrentUserID(c)

	portfolio, err := pc.Portfolios.GetUserPortfolio(userID)
	if err != nil {
		pc.Logger.Errorf("Error getting portfolio: %v", err)
		api.ResultError(c, nil)
		return
	}

	var matches []models.Stock
	for _, owned := range portfolio {
		if strings.EqualFold(owned.Symbol, symbol) {
			matches = append(matches, owned)
		}
	}

	// Anything other than exactly one match reports not-found. More than one
	// match is unreachable while the unique index holds.
	if len(matches) != 1 {
		api.ResultError(c, []string{"stockNotInPortfolio"})
		return
	}

	if err := pc.Portfolios.Delete(userID, matches[0].Symbol); err != nil {
		pc.Logger.Errorf("Error deleting portfolio entry for %v: %v", symbol, err)
		api.ResultError(c, nil)
		return
	}

	api.ResultData(c, "Stock removed from portfolio")
}
