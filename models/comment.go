package models

type Comment struct {
	Generic

	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`

	StockID uint `gorm:"index;not null" json:"stock_id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `json:"user"`
}
