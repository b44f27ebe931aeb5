package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stockfolio/api"
	"stockfolio/models"
	"stockfolio/repository"
)

type CommentStore interface {
	GetAll(query repository.CommentQuery) ([]models.Comment, error)
	GetByID(id uint) (*models.Comment, error)
	Create(comment models.Comment) (*models.Comment, error)
	Update(id uint, title, content string) (*models.Comment, error)
	Delete(id uint) (*models.Comment, error)
}

type CommentsController struct {
	Comments CommentStore
	Stocks   StockStore
	Logger   *zap.SugaredLogger
}

func (cc CommentsController) GetComments(c *gin.Context) {
	var query repository.CommentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	comments, err := cc.Comments.GetAll(query)
	if err != nil {
		cc.Logger.Errorf("Error listing comments: %v", err)
		api.ResultError(c, nil)
		return
	}

	api.ResultData(c, api.ToCommentResponses(comments))
}

func (cc CommentsController) GetComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	comment, err := cc.Comments.GetByID(id)
	if err != nil {
		cc.Logger.Errorf("Error getting comment %v: %v", id, err)
		api.ResultError(c, nil)
		return
	}

	if comment == nil {
		api.ResultNotFound(c)
		return
	}

	api.ResultData(c, api.ToCommentResponse(*comment))
}

func (cc CommentsController) CreateComment(c *gin.Context) {
	stockID, err := strconv.ParseUint(c.Param("stockID"), 10, 32)
	if err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	var payload api.CreateCommentRequest
	if err := c.BindJSON(&payload); err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	exists, err := cc.Stocks.Exists(uint(stockID))
	if err != nil {
		cc.Logger.Errorf("Error checking stock %v: %v", stockID, err)
		api.ResultError(c, nil)
		return
	}

	if !exists {
		api.ResultError(c, []string{"stockDoesNotExist"})
		return
	}

	comment, err := cc.Comments.Create(models.Comment{
		Title:   payload.Title,
		Content: payload.Content,
		StockID: uint(stockID),
		UserID:  CurrentUserID(c),
	})
	if err != nil {
		cc.Logger.Errorf("Error creating comment: %v", err)
		api.ResultError(c, nil)
		return
	}

	api.ResultCreated(c, api.ToCommentResponse(*comment))
}

func (cc CommentsController) UpdateComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	var payload api.UpdateCommentRequest
	if err := c.BindJSON(&payload); err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	comment, err := cc.Comments.Update(id, payload.Title, payload.Content)
	if err != nil {
		cc.Logger.Errorf("Error updating comment %v: %v", id, err)
		api.ResultError(c, nil)
		return
	}

	if comment == nil {
		api.ResultNotFound(c)
		return
	}

	api.ResultData(c, api.ToCommentResponse(*comment))
}

func (cc CommentsController) DeleteComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	comment, err := cc.Comments.Delete(id)
	if err != nil {
		cc.Logger.Errorf("Error deleting comment %v: %v", id, err)
		api.ResultError(c, nil)
		return
	}

	if comment == nil {
		api.ResultNotFound(c)
		return
	}

	api.ResultData(c, api.ToCommentResponse(*comment))
}
