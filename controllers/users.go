package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stockfolio/api"
	"stockfolio/models"
)

type UsersController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

func (u UsersController) GetCurrentUser(c *gin.Context) {
	user, err := models.GetUserByID(u.DB, CurrentUserID(c))
	if err != nil {
		u.Logger.Errorf("Error getting user: %v", err)
		api.ResultError(c, nil)
		return
	}

	if user == nil {
		api.ResultNotFound(c)
		return
	}

	api.ResultData(c, api.UserResponse{
		Username: user.Username,
		Email:    user.Email,
	})
}
