package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/aescanero/awesomeness/internal/prediction"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Metrics is the subset of the metrics collector the server reports to
type Metrics interface {
	RecordPrediction(percentage int)
	RecordRequest(route string, status int, duration time.Duration)
}

// Server represents the public HTTP server
type Server struct {
	router    *gin.Engine
	server    *http.Server
	predictor *prediction.Predictor
	metrics   Metrics
	logger    *zap.Logger

	mu       sync.Mutex
	listener net.Listener
}

// Config holds HTTP server configuration
type Config struct {
	Port              int
	ReadHeaderTimeout time.Duration
	Predictor         *prediction.Predictor
	Metrics           Metrics
	Logger            *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	predictor := cfg.Predictor
	if predictor == nil {
		predictor = prediction.NewPredictor()
	}

	router := gin.New()
	// Match on the escaped path so an encoded slash stays inside one city segment
	router.UseRawPath = true
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	if cfg.Metrics != nil {
		router.Use(requestMetrics(cfg.Metrics))
	}

	s := &Server{
		router:    router,
		predictor: predictor,
		metrics:   cfg.Metrics,
		logger:    logger,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	return s
}

// setupRoutes configures routes. Anything else falls through to gin's 404.
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleUsage)
	s.router.GET("/:city", s.handlePredict)
}

// Handler returns the underlying HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the listening socket without serving
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind HTTP server: %w", err)
	}
	s.listener = listener

	s.logger.Info("server listening", zap.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound address, or nil before Listen
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections on the bound listener until Shutdown
func (s *Server) Serve() error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener == nil {
		return fmt.Errorf("HTTP server is not listening")
	}

	if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Start binds and serves
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	// Serve may never have run on a bound listener
	s.mu.Lock()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.mu.Unlock()

	s.logger.Info("HTTP server shut down complete")
	return nil
}
