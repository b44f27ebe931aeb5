package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stockfolio/api"
	"stockfolio/models"
)

type AuthController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

func (a AuthController) Register(c *gin.Context) {
	type registerParams struct {
		Username string `json:"username" binding:"required,min=3"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	var payload registerParams
	if err := c.BindJSON(&payload); err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	existing, err := models.GetUserByUsername(a.DB, payload.Username)
	if err != nil {
		a.Logger.Errorf("Error looking up user: %v", err)
		api.ResultError(c, nil)
		return
	}
	if existing != nil {
		api.ResultError(c, []string{"usernameTaken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		a.Logger.Errorf("Error hashing password: %v", err)
		api.ResultError(c, nil)
		return
	}

	user := models.User{
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: string(hash),
	}
	if err := a.DB.Create(&user).Error; err != nil {
		a.Logger.Errorf("Error creating user: %v", err)
		api.ResultError(c, nil)
		return
	}

	token, err := SignToken(user.ID)
	if err != nil {
		a.Logger.Errorf("Error signing token: %v", err)
		api.ResultError(c, nil)
		return
	}

	api.ResultCreated(c, api.UserResponse{
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}

func (a AuthController) Login(c *gin.Context) {
	type loginParams struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var payload loginParams
	if err := c.BindJSON(&payload); err != nil {
		api.ResultError(c, []string{"invalidRequest"})
		return
	}

	user, err := models.GetUserByUsername(a.DB, payload.Username)
	if err != nil {
		a.Logger.Errorf("Error looking up user: %v", err)
		api.ResultError(c, nil)
		return
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)) != nil {
		api.ResultCustomError(c, http.StatusUnauthorized, []string{"invalidCredentials"})
		return
	}

	token, err := SignToken(user.ID)
	if err != nil {
		a.Logger.Errorf("Error signing token: %v", err)
		api.ResultError(c, nil)
		return
	}

	api.ResultData(c, api.UserResponse{
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}
