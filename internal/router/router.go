package router

import (
	"github.com/gin-gonic/gin"

	"github.com/smartrecipes/backend/config"
	"github.com/smartrecipes/backend/internal/api"
	"github.com/smartrecipes/backend/internal/middleware"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Search    *api.SearchHandler
	Calories  *api.CaloriesHandler
	Auth      *api.AuthHandler
	Favorites *api.FavoriteHandler
	Validator middleware.TokenValidator
	Limiter   *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Session(cfg.Session.CookieName, cfg.Session.TTL))
	if cfg.RateLimit.Enabled && h.Limiter != nil {
		router.Use(h.Limiter.RateLimitMiddleware())
	}

	router.GET("/health", api.Health)

	v1 := router.Group("/api/v1")
	{
		h.Search.RegisterRoutes(v1)
		h.Calories.RegisterRoutes(v1)
		h.Auth.RegisterRoutes(v1)
		h.Favorites.RegisterRoutes(v1, h.Validator)
	}

	return router
}
