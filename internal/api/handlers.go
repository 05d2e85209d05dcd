package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriplan/backend/internal/middleware"
	"github.com/pageza/nutriplan/backend/internal/options"
	"github.com/pageza/nutriplan/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Wellness plan API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes. A nil limiter disables rate limiting.
func RegisterRoutes(router *gin.Engine, streamer service.CompletionStreamer, catalog *options.Catalog, limiter *middleware.RateLimiter) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	var guards []gin.HandlerFunc
	if limiter != nil {
		guards = append(guards, limiter.RateLimitMiddleware())
	} else {
		log.Printf("[Router] rate limiting disabled")
	}

	api := router.Group("/api")
	NewPlanHandler(streamer).RegisterRoutes(api, guards...)
	api.GET("/options", NewOptionsHandler(catalog).List)

	if limiter != nil {
		RegisterRateLimitRoutes(api, limiter)
	}
}

// RegisterRateLimitRoutes registers endpoints for checking rate limit status
func RegisterRateLimitRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	router.GET("/rate-limits/generation", func(c *gin.Context) {
		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
			return
		}

		cfg := limiter.Config()
		c.JSON(http.StatusOK, gin.H{
			"limit":      cfg.Limit,
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
			"window":     cfg.Window.String(),
		})
	})
}
