package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"aiservice/internal/config"
	"aiservice/internal/handler"
	"aiservice/internal/logger"
	"aiservice/internal/server"

	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.Logging)
	slog.SetDefault(appLogger)

	appLogger.Info("AI service starting",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	srv, err := server.New(cfg, appLogger, handler.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
	if err != nil {
		appLogger.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	appLogger.Info("server configured",
		"addr", cfg.Addr(),
		"cors_origins", cfg.CORS.AllowedOrigins,
		"cors_credentials", cfg.CORS.AllowCredentials,
		"metrics_enabled", cfg.Metrics.Enabled,
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		appLogger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}

	appLogger.Info("server stopped")
}
