package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/awesomeness/internal/config"
	"github.com/aescanero/awesomeness/internal/prediction"
	metrics "github.com/aescanero/awesomeness/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/awesomeness/pkg/api/admin"
	"github.com/aescanero/awesomeness/pkg/api/grpc"
	"github.com/aescanero/awesomeness/pkg/api/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting awesomeness predictor",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsCollector := metrics.NewCollector(registry)

	httpServer := http.NewServer(&http.Config{
		Port:              cfg.HTTPPort,
		ReadHeaderTimeout: cfg.Timeouts.ReadHeaderTimeout,
		Predictor:         prediction.NewPredictor(),
		Metrics:           metricsCollector,
		Logger:            logger,
	})

	// Bind synchronously so a taken port stops the process before anything else starts
	if err := httpServer.Listen(); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	go func() {
		if err := httpServer.Serve(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	var adminServer *admin.Server
	if cfg.AdminEnabled() {
		adminServer = admin.NewServer(&admin.Config{
			Port:              cfg.AdminPort,
			ReadHeaderTimeout: cfg.Timeouts.ReadHeaderTimeout,
			Gatherer:          registry,
			Logger:            logger,
		})

		go func() {
			if err := adminServer.Start(); err != nil {
				logger.Fatal("admin server failed", zap.Error(err))
			}
		}()
	}

	var grpcServer *grpc.Server
	if cfg.GRPCEnabled() {
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Port:   cfg.GRPCPort,
			Logger: logger,
		})
		if err != nil {
			logger.Fatal("failed to create gRPC server", zap.Error(err))
		}

		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Fatal("gRPC server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("awesomeness predictor started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.Int("admin_port", cfg.AdminPort),
		zap.Int("grpc_port", cfg.GRPCPort))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if adminServer != nil {
		if err := adminServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("admin server shutdown error", zap.Error(err))
		}
	}

	if grpcServer != nil {
		if err := grpcServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gRPC server shutdown error", zap.Error(err))
		}
	}

	logger.Info("awesomeness predictor shut down complete")
}

// initLogger initializes the logger based on log level and format
func initLogger(level, format string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	if format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
