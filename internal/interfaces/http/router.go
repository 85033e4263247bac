package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/egest-app/egest/internal/domain/shared/events"
	"github.com/egest-app/egest/internal/infrastructure/config"
	"github.com/egest-app/egest/internal/interfaces/http/middleware"
	"github.com/egest-app/egest/internal/shared/logger"

	_ "github.com/egest-app/egest/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, dispatcher *events.InMemoryEventDispatcher, log logger.Interface) *Router {
	return &Router{Container: NewContainer(db, cfg, dispatcher, log)}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/version", r.hdlrs.healthHandler.Version)
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	r.setupEntityRoutes(api)
	r.setupDocumentRoutes(api)
	r.setupComplianceRoutes(api)
}

// setupEntityRoutes configures entity registry routes
func (r *Router) setupEntityRoutes(api *gin.RouterGroup) {
	entities := api.Group("/entities")
	{
		entities.POST("", r.hdlrs.entityHandler.CreateEntity)
		entities.GET("", r.hdlrs.entityHandler.ListEntities)
		entities.GET("/:id", r.hdlrs.entityHandler.GetEntity)
		entities.PATCH("/:id", r.hdlrs.entityHandler.UpdateEntity)
		entities.DELETE("/:id", r.hdlrs.entityHandler.DeleteEntity)

		entities.GET("/:id/compliance", r.hdlrs.complianceHandler.GetEntityCompliance)
		entities.GET("/:id/documents", r.hdlrs.documentHandler.ListDocuments)
		entities.POST("/:id/documents", r.hdlrs.documentHandler.UploadDocument)
	}
}

// setupDocumentRoutes configures document routes addressed by document id
func (r *Router) setupDocumentRoutes(api *gin.RouterGroup) {
	documents := api.Group("/documents")
	{
		documents.DELETE("/:id", r.hdlrs.documentHandler.DeleteDocument)
	}
}

// setupComplianceRoutes configures catalog and overview routes
func (r *Router) setupComplianceRoutes(api *gin.RouterGroup) {
	c := api.Group("/compliance")
	{
		c.GET("/catalog", r.hdlrs.complianceHandler.GetCatalog)
		c.GET("/overview", r.hdlrs.complianceHandler.GetOverview)
	}
}
