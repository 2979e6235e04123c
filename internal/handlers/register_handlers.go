package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/firm_books/cmd/docs"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/SscSPs/firm_books/internal/platform/config"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services, posthogClient); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	v1 := r.Group("/api/v1")

	if cfg.RateLimit != "" {
		lim, err := middleware.NewLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		v1.Use(middleware.RateLimit(lim))
	}

	if cfg.AuthEnabled {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	} else {
		slog.Warn("Authentication disabled; changes are attributed to the system user")
	}

	registerJournalRoutes(v1, services.Journal, posthogClient)
	registerReportingRoutes(v1, services.Reporting)
	registerInvoiceRoutes(v1, services.Invoice)
	registerFirmRoutes(v1, services.Firm)
	registerInventoryRoutes(v1, services.Inventory)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
