package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantgrad/greeks-engine/pkg/metrics"
	"github.com/quantgrad/greeks-engine/pkg/utils/logger"
	"github.com/quantgrad/greeks-engine/pkg/utils/ratelimit"
)

// Config holds the configuration for the API server
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
	RateLimit    float64
	RateBurst    int
}

// Server represents the API server
type Server struct {
	config     Config
	engine     *gin.Engine
	httpServer *http.Server
	handlers   *Handlers
	log        *logger.Logger
}

// NewServer creates a new API server
func NewServer(config Config, handlers *Handlers, recorder *metrics.Recorder) *Server {
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = 10 * time.Second
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 10 * time.Second
	}
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		config:   config,
		engine:   gin.New(),
		handlers: handlers,
		log:      logger.GetLogger("api.server"),
	}

	server.setupRoutes(recorder)
	return server
}

// setupRoutes configures middleware and API routes
func (s *Server) setupRoutes(recorder *metrics.Recorder) {
	s.engine.Use(RecoveryMiddleware())
	s.engine.Use(LoggingMiddleware())
	s.engine.Use(MetricsMiddleware(recorder))
	s.engine.Use(RateLimitMiddleware(ratelimit.New(s.config.RateLimit, s.config.RateBurst)))

	s.engine.GET("/health", s.handlers.HealthCheckHandler)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/api/v1")
	v1.POST("/price", s.handlers.PriceHandler)
	v1.POST("/greeks", s.handlers.GreeksHandler)
	v1.POST("/hessian", s.handlers.HessianHandler)
	v1.POST("/taylor", s.handlers.TaylorHandler)
	v1.POST("/implied-vol", s.handlers.ImpliedVolHandler)
}

// Start starts the API server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.log.Infof("starting API server on %s", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop stops the API server gracefully
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		s.log.Info("stopping API server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Engine exposes the router, used by handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
