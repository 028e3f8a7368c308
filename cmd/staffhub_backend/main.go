package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/newwork/staffhub/internal/adapters/gemini"
	"github.com/newwork/staffhub/internal/core/services"
	"github.com/newwork/staffhub/internal/handlers"
	"github.com/newwork/staffhub/internal/middleware"
	"github.com/newwork/staffhub/internal/platform/config"
	"github.com/newwork/staffhub/internal/repositories/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the in-memory store and seed the demo data. Everything is
	// volatile; a restart returns the server to this state.
	store := memory.NewStore()
	store.Seed()
	repos := memory.NewRepositoryProvider(store)
	logger.Info("In-memory store seeded.")

	enhancer := gemini.NewClient(gemini.Config{
		APIURL:  cfg.GeminiAPIURL,
		APIKey:  cfg.GeminiAPIKey,
		Timeout: cfg.EnhanceTimeout,
	}, logger)

	container := services.NewServiceContainer(cfg, repos, enhancer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Evict expired sessions in the background for the lifetime of the server.
	authService, ok := container.Auth.(*services.AuthService)
	if !ok {
		logger.Error("Auth service does not support session sweeping")
		os.Exit(1)
	}
	go authService.RunSessionSweeper(ctx)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, container, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
