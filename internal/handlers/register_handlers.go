package handlers

import (
	"github.com/abuyamnglobal-com/tajheez/cmd/docs"
	"github.com/abuyamnglobal-com/tajheez/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool) {
	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, dbPool)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity
// route registrations.
func setupAPIRoutes(r *gin.Engine, dbPool *pgxpool.Pool) {
	api := r.Group("/api")

	registerTransactionRoutes(api, dbPool)
	registerPartyRoutes(api, dbPool)
	registerReferenceRoutes(api, dbPool)
	registerUserRoutes(api, dbPool)
	registerReportingRoutes(api, dbPool)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
