package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/nutriplan/backend/config"
	"github.com/pageza/nutriplan/backend/internal/api"
	"github.com/pageza/nutriplan/backend/internal/middleware"
	"github.com/pageza/nutriplan/backend/internal/options"
	"github.com/pageza/nutriplan/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	streamer service.CompletionStreamer,
	catalog *options.Catalog,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	// ErrorHandler does the recovering; gin.Recovery would swallow aborted streams.
	router := gin.New()
	router.Use(gin.Logger())

	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	api.RegisterRoutes(router, streamer, catalog, limiter)

	return router
}
