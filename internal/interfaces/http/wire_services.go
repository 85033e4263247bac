package http

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	complianceServices "github.com/egest-app/egest/internal/application/compliance/services"
	"github.com/egest-app/egest/internal/application/compliance/usecases"
	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/infrastructure/cache"
	"github.com/egest-app/egest/internal/infrastructure/catalog"
	"github.com/egest-app/egest/internal/infrastructure/config"
	"github.com/egest-app/egest/internal/infrastructure/email"
	"github.com/egest-app/egest/internal/infrastructure/metrics"
	"github.com/egest-app/egest/internal/infrastructure/scheduler"
	"github.com/egest-app/egest/internal/shared/logger"
	"github.com/egest-app/egest/internal/shared/services/markdown"
)

// ============================================================
// Section 1: Infrastructure - Redis, Metrics, Repositories
// ============================================================

func (c *Container) initInfrastructure() {
	if c.cfg.Redis.Enabled {
		c.redis = initRedis(c.cfg, c.log)
	}

	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.metrics = metrics.NewWithRegistry(c.registry)

	c.repos = newRepositories(c.db)
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	log.Infow("Redis connection established successfully", "address", cfg.Redis.GetAddr())

	return redisClient
}

// ============================================================
// Section 2: Compliance - Catalog, Evaluator, Cache, UseCases
// ============================================================

func (c *Container) initCompliance() {
	cat, err := catalog.LoadCatalogFile(c.cfg.Compliance.CatalogPath)
	if err != nil {
		c.log.Fatalw("failed to load requirement catalog", "path", c.cfg.Compliance.CatalogPath, "error", err)
	}
	c.catalog = cat
	c.evaluator = compliance.NewEvaluator(cat,
		compliance.WithExpiringWindowDays(c.cfg.Compliance.ExpiringWindowDays),
	)
	c.log.Infow("requirement catalog loaded",
		"entity_types", len(cat.EntityTypes()),
		"expiring_window_days", c.evaluator.ExpiringWindowDays(),
	)

	if c.redis != nil {
		c.statusCache = cache.NewRedisStatusCache(c.redis, c.cfg.Redis.StatusTTL(), c.log)
	} else {
		c.statusCache = cache.NewNoopStatusCache()
	}

	c.ucs = c.newUseCases()
}

// ============================================================
// Section 3: Events & Jobs - Cache invalidation, Expiry digest
// ============================================================

func (c *Container) initEventsAndJobs() {
	invalidator := complianceServices.NewStatusCacheInvalidator(c.statusCache, c.log)
	if err := invalidator.Register(c.dispatcher); err != nil {
		c.log.Fatalw("failed to register status cache invalidator", "error", err)
	}

	if !c.cfg.Digest.Enabled {
		return
	}

	c.ucs.sendDigestUC = NewSendExpiryDigestUseCase(c.cfg, c.ucs.overviewUC, c.metrics, c.log)

	sm, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		c.log.Fatalw("failed to create scheduler", "error", err)
	}
	if err := sm.RegisterDigestJob(c.cfg.Digest.Cron, c.ucs.sendDigestUC, scheduler.DefaultDigestTimeout); err != nil {
		c.log.Fatalw("failed to register digest job", "cron", c.cfg.Digest.Cron, "error", err)
	}
	c.schedulerManager = sm
}

// NewSendExpiryDigestUseCase builds the digest use case over SMTP and the
// markdown renderer. The worker binary uses it directly.
func NewSendExpiryDigestUseCase(cfg *config.Config, overview usecases.OverviewEvaluator, m *metrics.Metrics, log logger.Interface) *usecases.SendExpiryDigestUseCase {
	return usecases.NewSendExpiryDigestUseCase(
		overview,
		markdown.NewRenderer(),
		email.NewSMTPMailer(cfg.Email),
		usecases.DigestOptions{
			Recipients: cfg.Digest.Recipients,
			Subject:    cfg.Digest.Subject,
		},
		m,
		log,
	)
}
