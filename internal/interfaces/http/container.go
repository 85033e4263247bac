package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/egest-app/egest/internal/application/compliance/usecases"
	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/domain/shared/events"
	"github.com/egest-app/egest/internal/infrastructure/config"
	"github.com/egest-app/egest/internal/infrastructure/metrics"
	"github.com/egest-app/egest/internal/infrastructure/scheduler"
	"github.com/egest-app/egest/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and background services, and owns their shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Repositories
	repos *repositories

	// Compliance core
	catalog     *compliance.RequirementCatalog
	evaluator   *compliance.Evaluator
	statusCache usecases.StatusCache

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Background services
	dispatcher       *events.InMemoryEventDispatcher
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
// dispatcher must not be started yet; subscribers are registered here.
func NewContainer(db *gorm.DB, cfg *config.Config, dispatcher *events.InMemoryEventDispatcher, log logger.Interface) *Container {
	c := &Container{
		engine:     gin.New(),
		db:         db,
		cfg:        cfg,
		log:        log,
		dispatcher: dispatcher,
	}

	// Section 1: Infrastructure - Redis, Metrics, Repositories
	c.initInfrastructure()

	// Section 2: Compliance - Catalog, Evaluator, Cache, UseCases
	c.initCompliance()

	// Section 3: Events & Jobs - Cache invalidation, Expiry digest
	c.initEventsAndJobs()

	// Section 4: Handlers
	c.initHandlers()

	return c
}
