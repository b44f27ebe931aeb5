package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockResponse is the boundary shape for a stock. Comments are only present
// on single-stock reads and listings, never on portfolio projections.
type StockResponse struct {
	ID          uint              `json:"id"`
	Symbol      string            `json:"symbol"`
	CompanyName string            `json:"company_name"`
	Purchase    decimal.Decimal   `json:"purchase"`
	LastDiv     decimal.Decimal   `json:"last_div"`
	Industry    string            `json:"industry"`
	MarketCap   int64             `json:"market_cap"`
	Comments    []CommentResponse `json:"comments,omitempty"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"created_on"`
	CreatedBy string    `json:"created_by"`
	StockID   uint      `json:"stock_id"`
}

type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

type CreateStockRequest struct {
	Symbol      string          `json:"symbol" binding:"required"`
	CompanyName string          `json:"company_name" binding:"required"`
	Purchase    decimal.Decimal `json:"purchase"`
	LastDiv     decimal.Decimal `json:"last_div"`
	Industry    string          `json:"industry"`
	MarketCap   int64           `json:"market_cap"`
}

// UpdateStockRequest overwrites every mutable stock attribute.
type UpdateStockRequest struct {
	Symbol      string          `json:"symbol" binding:"required"`
	CompanyName string          `json:"company_name" binding:"required"`
	Purchase    decimal.Decimal `json:"purchase"`
	LastDiv     decimal.Decimal `json:"last_div"`
	Industry    string          `json:"industry"`
	MarketCap   int64           `json:"market_cap"`
}

type CreateCommentRequest struct {
	Title   string `json:"title" binding:"required,min=5"`
	Content string `json:"content" binding:"required,min=5"`
}

// UpdateCommentRequest touches title and content only; creation time and
// author never change.
type UpdateCommentRequest struct {
	Title   string `json:"title" binding:"required,min=5"`
	Content string `json:"content" binding:"required,min=5"`
}
