package models

import "github.com/shopspring/decimal"

type Stock struct {
	Generic

	// Ticker symbol of the stock. Expected to be unique, but uniqueness is a
	// caller-side rule rather than a schema constraint.
	Symbol      string          `gorm:"index;not null" json:"symbol"`
	CompanyName string          `gorm:"not null" json:"company_name"`
	Purchase    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"purchase"`
	LastDiv     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"last_div"`
	Industry    string          `json:"industry"`
	MarketCap   int64           `json:"market_cap"`

	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
