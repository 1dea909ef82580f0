package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dashlens/backend/config"
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

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		chat := v1.Group("/chat")
		{
			chat.POST("/messages", handler.PostMessage)
		}

		fuel := v1.Group("/fuel")
		{
			fuel.GET("/price", handler.GetFuelPrice)
		}
	}

	return router
}
