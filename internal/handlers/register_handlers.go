package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/finance_tracker/cmd/docs"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", healthHandler(services.Finance))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.APIToken))

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	registerTransactionRoutes(v1, service.Finance, loc)
	registerBudgetRoutes(v1, service.Finance)
	registerCategoryRoutes(v1, service.Finance)
	registerSettingsRoutes(v1, service.Finance)
	registerSummaryRoutes(v1, service.Finance)
	registerValidateRoutes(v1)
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

// healthHandler godoc
// @Summary Health check
// @Description Liveness plus the outcome of the last snapshot write
// @Tags root
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /health [get]
func healthHandler(svc portssvc.SettingsSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := svc.Status()
		res := dto.StatusResponse{Status: "ok"}
		if status.LastError != nil {
			msg := status.LastError.Error()
			res.Status = "degraded"
			res.LastError = &msg
		}
		if !status.LastSavedAt.IsZero() {
			saved := status.LastSavedAt.UTC().Format(time.RFC3339)
			res.LastSavedAt = &saved
		}
		// A failed write does not stop the service from answering.
		c.JSON(http.StatusOK, res)
	}
}
