package controllers

import (
	"github.com/gin-gonic/gin"
)

type Router struct {
	HealthController    *HealthController
	AuthController      *AuthController
	UsersController     *UsersController
	StocksController    *StocksController
	CommentsController  *CommentsController
	PortfolioController *PortfolioController
}

func (r Router) RegisterRoutes(router gin.IRouter) {
	//
	// Anonymous requests
	//
	router.GET("/health", r.HealthController.Status)

	router.POST("/auth/register", r.AuthController.Register)
	router.POST("/auth/login", r.AuthController.Login)

	router.GET("/stocks/:id", r.StocksController.GetStock)
	router.POST("/stocks", r.StocksController.CreateStock)
	router.PUT("/stocks/:id", r.StocksController.UpdateStock)
	router.DELETE("/stocks/:id", r.StocksController.DeleteStock)

	//
	// Authorized requests
	//
	authorized := router.Group("/", RequireAuth)

	authorized.GET("/users/me", r.UsersController.GetCurrentUser)

	authorized.GET("/stocks", r.StocksController.GetStocks)

	authorized.GET("/comments", r.CommentsController.GetComments)
	authorized.GET("/comments/:id", r.CommentsController.GetComment)
	authorized.POST("/comments/stock/:stockID", r.CommentsController.CreateComment)
	authorized.PUT("/comments/:id", r.CommentsController.UpdateComment)
	authorized.DELETE("/comments/:id", r.CommentsController.DeleteComment)

	authorized.GET("/portfolio", r.PortfolioController.GetPortfolio)
	authorized.POST("/portfolio", r.PortfolioController.AddStock)
	authorized.DELETE("/portfolio", r.PortfolioController.RemoveStock)
}
