package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stockfolio/controllers"
	"stockfolio/core"
	"stockfolio/internal"
	"stockfolio/internal/fmp"
	"stockfolio/models"
	"stockfolio/repository"
)

func main() {
	godotenv.Load()

	logger, err := internal.NewLogger()
	if err != nil {
		panic(err)
	}

	// connect to the database
	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	// auto migrate the database
	err = db.AutoMigrate(
		&models.User{},
		&models.Stock{},
		&models.Comment{},
		&models.Portfolio{},
	)
	if err != nil {
		panic(err)
	}

	// set up http server
	engine := gin.New()
	engine.Use(gin.Recovery(), controllers.RequestLogger(logger))

	err = engine.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	engine.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "https://"+os.Getenv("UI_DOMAIN"))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	stocks := repository.StockRepository{DB: db}
	comments := repository.CommentRepository{DB: db}
	portfolios := repository.PortfolioRepository{DB: db}

	router := controllers.Router{
		HealthController: &controllers.HealthController{DB: db},
		AuthController:   &controllers.AuthController{DB: db, Logger: logger},
		UsersController:  &controllers.UsersController{DB: db, Logger: logger},
		StocksController: &controllers.StocksController{Stocks: stocks, Logger: logger},
		CommentsController: &controllers.CommentsController{
			Comments: comments,
			Stocks:   stocks,
			Logger:   logger,
		},
		PortfolioController: &controllers.PortfolioController{
			Portfolios: portfolios,
			Stocks:     stocks,
			Provider:   fmp.NewClient(logger),
			Logger:     logger,
		},
	}

	router.RegisterRoutes(engine)

	err = engine.Run()
	if err != nil {
		return
	}
}
