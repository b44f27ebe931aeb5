package models

// Portfolio links a user to a stock they track. The composite unique index
// means two concurrent adds for the same (user, stock) pair cannot both
// commit, even though the controller also checks membership before inserting.
type Portfolio struct {
	Generic

	UserID  uint `gorm:"uniqueIndex:idx_portfolios_user_stock;not null" json:"user_id"`
	StockID uint `gorm:"uniqueIndex:idx_portfolios_user_stock;not null" json:"stock_id"`
}
