package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/imani-cms/imani_backend/cmd/docs"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/middleware"
	"github.com/imani-cms/imani_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes over the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group. Every route in
// the group carries a resolved tenant scope.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.TenantScopeMiddleware(),
	)

	v1.POST("/auth/logout", newAuthHandler(services.Auth).logout)

	registerNavigationRoutes(v1)
	registerMemberRoutes(v1, services.Member)
	registerTransactionRoutes(v1, services.Transaction)
	registerEventRoutes(v1, services.Event)
	registerSermonRoutes(v1, services.Sermon, services.AIText)
	registerCommunicationRoutes(v1, services.Communication)
	registerBudgetRoutes(v1, services.Budget)
	registerReportingRoutes(v1, services.Reporting, services.Audit)
	registerTicketRoutes(v1, services.Ticket)
	registerUserRoutes(v1, services.User)
	registerAPIKeyRoutes(v1, services.APIKey)
	registerAIRoutes(v1, services.AIText)
	registerScriptureRoutes(v1, services.Scripture)

	// Owner console. Tenant-bound roles never reach these routes.
	owner := v1.Group("/owner", middleware.RequireRoles(domain.RoleSystemOwner))
	registerOwnerRoutes(owner, services.Tenant, services.Ticket, services.Audit)
}

// setupSwaggerRoutes exposes the API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
