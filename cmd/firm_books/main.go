package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/firm_books/internal/core/services"
	"github.com/SscSPs/firm_books/internal/handlers"
	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/SscSPs/firm_books/internal/platform/config"
	"github.com/SscSPs/firm_books/internal/repositories"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Firm Books API
// @version 1.0
// @description Double-entry books, statements and GST invoices for a single firm.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	repos, closeStorage, err := repositories.NewRepositoryProvider(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStorage()
	logger.Info("Storage ready", slog.String("driver", cfg.StorageDriver))

	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if cfg.IsProduction && len(cfg.CORSAllowedOrigins) == 0 {
		logger.Warn("CORS_ALLOWED_ORIGINS not set; cross-origin requests are not allowed")
	} else {
		r.Use(cors.New(corsConfig(cfg)))
	}
	r.Use(middleware.PosthogMiddleware(posthogClient))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	c.MaxAge = 12 * time.Hour
	if len(cfg.CORSAllowedOrigins) > 0 {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		c.AllowAllOrigins = true
	}
	return c
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
