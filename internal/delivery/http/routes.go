package http

import (
	"github.com/gin-gonic/gin"
	"github.com/priceguesser/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Catalog search proxy, kept at the path the web client expects
	router.GET("/api/ikea-search", handler.SearchProxy)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		game := v1.Group("/game")
		{
			game.GET("/daily", handler.GetDailySet)
			game.GET("/random", handler.GetRandomProduct)
			game.POST("/score", handler.ScoreGuess)
			game.POST("/share", handler.Share)
		}
	}

	return router
}
