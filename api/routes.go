package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hanjaplatform/hanja-api/api/annotations"
	authHandlers "github.com/hanjaplatform/hanja-api/api/auth"
	"github.com/hanjaplatform/hanja-api/api/health"
	"github.com/hanjaplatform/hanja-api/api/history"
	"github.com/hanjaplatform/hanja-api/api/ner"
	"github.com/hanjaplatform/hanja-api/api/proxy"
	"github.com/hanjaplatform/hanja-api/api/punctuation"
	"github.com/hanjaplatform/hanja-api/api/translation"
	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/api/version"
	_ "github.com/hanjaplatform/hanja-api/docs/swagger"
)

// Default per-client limits used when no configuration is loaded
const (
	defaultRequestsPerSecond = 10
	defaultBurst             = 20
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Metrics != nil {
		metricsPath := "/metrics"
		if deps.Config != nil && deps.Config.Monitoring.MetricsPath != "" {
			metricsPath = deps.Config.Monitoring.MetricsPath
		}
		if deps.Config == nil || deps.Config.Monitoring.Enabled {
			engine.GET(metricsPath, gin.WrapH(deps.Metrics.Handler()))
		}
	}

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	limit := rateLimit(deps, rateLimiters, cleanupStop, cleanupInitialized)
	sessions := authHandlers.NewHandler(deps.Sessions)
	optionalAuth := sessions.OptionalAuthMiddleware()
	requireAuth := sessions.AuthMiddleware()

	// Passthrough routes at the paths the web front-end already calls
	proxyGroup := engine.Group("/api")
	proxyGroup.Use(limit, optionalAuth)
	proxy.RegisterRoutes(proxyGroup, deps)

	// API v1 routes
	v1 := engine.Group("/api/v1")
	v1.Use(limit)

	v1.GET("/me", requireAuth, sessions.Me)

	ner.RegisterRoutes(v1.Group("/ner"), deps, optionalAuth, requireAuth)
	annotations.RegisterRoutes(v1.Group("/annotations"))
	punctuation.RegisterRoutes(v1.Group("/punctuation"), deps, optionalAuth)
	translation.RegisterRoutes(v1.Group("/translation"), deps, optionalAuth)

	// History needs the database
	if deps.History != nil {
		history.RegisterRoutes(v1.Group("/history"), deps, requireAuth)
	}

	return nil
}

// rateLimit builds the per-client limiter from configuration. A disabled
// limiter passes every request.
func rateLimit(deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) gin.HandlerFunc {
	rps, burst := float64(defaultRequestsPerSecond), defaultBurst
	if cfg := deps.Config; cfg != nil {
		if !cfg.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		if cfg.RateLimiting.RequestsPerSecond > 0 {
			rps = cfg.RateLimiting.RequestsPerSecond
		}
		if cfg.RateLimiting.Burst > 0 {
			burst = cfg.RateLimiting.Burst
		}
	}
	return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
