package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"stockfolio/models"
)

// CommentQuery filters comments by the exact symbol of their parent stock and
// optionally sorts newest-first.
type CommentQuery struct {
	Symbol       string `form:"symbol"`
	IsDescending bool   `form:"is_descending"`
}

type CommentRepository struct {
	DB *gorm.DB
}

func (r CommentRepository) GetAll(query CommentQuery) ([]models.Comment, error) {
	tx := r.DB.Model(&models.Comment{}).Preload("User")

	if strings.TrimSpace(query.Symbol) != "" {
		tx = tx.
			Joins("JOIN stocks ON stocks.id = comments.stock_id").
			Where("stocks.symbol = ?", query.Symbol)
	}

	if query.IsDescending {
		tx = tx.Order("comments.created_at DESC")
	}

	var comments []models.Comment
	err := tx.Find(&comments).Error
	return comments, err
}

func (r CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.DB.Preload("User").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &comment, nil
}

func (r CommentRepository) Create(comment models.Comment) (*models.Comment, error) {
	if err := r.DB.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// Update touches title and content only.
func (r CommentRepository) Update(id uint, title, content string) (*models.Comment, error) {
	var comment models.Comment
	err := r.DB.First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	comment.Title = title
	comment.Content = content

	if err := r.DB.Save(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r CommentRepository) Delete(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.DB.First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	if err := r.DB.Delete(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}
