package handlers

import (
	"github.com/gin-gonic/gin"

	"lambda-http-adapter/internal/config"
	"lambda-http-adapter/internal/middleware"
)

// NewRouter builds the demo application. The same engine serves plain HTTP
// locally and runs inside Lambda behind the adapter.
func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.RateLimit(50, 100))

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/echo", Echo)
		v1.GET("/greetings/:name", Greeting)
		v1.GET("/assets/pixel.png", Pixel)
	}

	return router
}
