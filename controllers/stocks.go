package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stockfolio/api"
	"stockfolio/models"
	"stockfolio/repository"
)

// StockStore is the persistence surface the stock endpoints need.
type StockStore interface {
	GetAll(query repository.StockQuery) ([]models.Stock, error)
	GetByID(id uint) (*models.Stock, error)
	GetBySymbol(symbol string) (*models.Stock, error)
	Create(stock models.Stock) (*models.Stock, error)
	Update(id uint, fields models.Stock) (*models.Stock, error)
	Delete(id uint) (*models.Stock, error)
	Exists(id uint) (bool, error)
}

type StocksController struct {
	Stocks StockStore
	Logger *zap.SugaredLogger
}

func (sc StocksController) GetStocks(c *gin.Context) {
	var query repository.StockQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	stocks, err := sc.Stocks.GetAll(query)
	if err != nil {
		sc.Logger.Errorf("Error listing stocks: %v", err)
		api.ResultError(c, nil)
		return
	}

	api.ResultData(c, api.ToStockResponses(stocks))
}

func (sc StocksController) GetStock(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	stock, err := sc.Stocks.GetByID(id)
	if err != nil {
		sc.Logger.Errorf("Error getting stock %v: %v", id, err)
		api.ResultError(c, nil)
		return
	}

	if stock == nil {
		api.ResultNotFound(c)
		return
	}

	api.ResultData(c, api.ToStockResponse(*stock))
}

func (sc StocksController) CreateStock(c *gin.Context) {
	var payload api.CreateStockRequest
	if err := c.BindJSON(&payload); err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	stock, err := sc.Stocks.Create(payload.Stock())
	if err != nil {
		sc.Logger.Errorf("Error creating stock: %v", err)
		api.ResultError(c, nil)
		return
	}

	api.ResultCreated(c, api.ToStockResponse(*stock))
}

func (sc StocksController) UpdateStock(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	var payload api.UpdateStockRequest
	if err := c.BindJSON(&payload); err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	stock, err := sc.Stocks.Update(id, payload.Stock())
	if err != nil {
		sc.Logger.Errorf("Error updating stock %v: %v", id, err)
		api.ResultError(c, nil)
		return
	}

	if stock == nil {
		api.ResultNotFound(c)
		return
	}

	api.ResultData(c, api.ToStockResponse(*stock))
}

func (sc StocksController) DeleteStock(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	stock, err := sc.Stocks.Delete(id)
	if err != nil {
		sc.Logger.Errorf("Error deleting stock %v: %v", id, err)
		api.ResultError(c, nil)
		return
	}

	if stock == nil {
		api.ResultNotFound(c)
		return
	}

	api.ResultNoContent(c)
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
