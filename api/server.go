package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/observability/logging"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		engine:       engine,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		dependencies: &types.Dependencies{},
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   5 * time.Minute,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}
}

// SetDependencies sets all handler dependencies and applies the server
// settings of deps.Config.
func (s *Server) SetDependencies(deps *types.Dependencies) {
	if deps == nil {
		deps = &types.Dependencies{}
	}
	s.dependencies = deps

	if deps.Config == nil {
		return
	}
	sc := deps.Config.Server
	if sc.ReadTimeout > 0 {
		s.httpServer.ReadTimeout = sc.ReadTimeout
	}
	if sc.WriteTimeout > 0 {
		s.httpServer.WriteTimeout = sc.WriteTimeout
	}
	if sc.MaxHeaderBytes > 0 {
		s.httpServer.MaxHeaderBytes = sc.MaxHeaderBytes
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()
	return s.setupRoutes()
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(gin.Logger())

	if s.dependencies.Metrics != nil {
		s.engine.Use(s.dependencies.Metrics.Middleware(logging.ServiceName))
	}

	cfg := s.dependencies.Config
	switch {
	case cfg == nil:
		s.engine.Use(CORS())
	case cfg.Security.EnableCORS:
		s.engine.Use(CORS(cfg.Security.CORSOrigins...))
	}

	if cfg != nil && cfg.Server.MaxRequestBytes > 0 {
		s.engine.Use(RequestSizeLimitWithSize(cfg.Server.MaxRequestBytes))
	} else {
		s.engine.Use(RequestSizeLimit())
	}
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	return RegisterRoutes(s.engine, s.dependencies, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	s.stopOnce.Do(func() { close(s.cleanupStop) })

	return s.httpServer.Shutdown(ctx)
}
