package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/egest-app/egest/internal/application/compliance/usecases"
	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/infrastructure/catalog"
	"github.com/egest-app/egest/internal/infrastructure/config"
	"github.com/egest-app/egest/internal/infrastructure/database"
	"github.com/egest-app/egest/internal/infrastructure/metrics"
	"github.com/egest-app/egest/internal/infrastructure/repository"
	"github.com/egest-app/egest/internal/infrastructure/scheduler"
	httpRouter "github.com/egest-app/egest/internal/interfaces/http"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/logger"
)

// The worker runs the expiry digest on its own schedule, for deployments
// that keep the API replicas free of cron jobs. Pass "once" as the second
// argument to send a single digest and exit.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}
	once := len(os.Args) > 2 && os.Args[2] == "once"

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting expiry digest worker", "environment", env, "once", once)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		log.Fatalw("failed to initialize business timezone", "error", err)
	}
	if len(cfg.Digest.Recipients) == 0 {
		log.Fatalw("digest.recipients is empty, nothing to do")
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	cat, err := catalog.LoadCatalogFile(cfg.Compliance.CatalogPath)
	if err != nil {
		log.Fatalw("failed to load requirement catalog", "error", err)
	}
	evaluator := compliance.NewEvaluator(cat, compliance.WithExpiringWindowDays(cfg.Compliance.ExpiringWindowDays))

	db := database.Get()
	m := metrics.New()
	overview := usecases.NewGetComplianceOverviewUseCase(
		repository.NewComplianceEntityRepository(db),
		repository.NewComplianceDocumentRepository(db),
		evaluator,
		usecases.OverviewOptions{
			FetchConcurrency: cfg.Compliance.FetchConcurrency,
			Timeout:          cfg.Compliance.EvaluationTimeout(),
		},
		m, log,
	)
	digest := httpRouter.NewSendExpiryDigestUseCase(cfg, overview, m, log)

	sm, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if once {
		runCtx, runCancel := context.WithTimeout(ctx, scheduler.DefaultDigestTimeout)
		defer runCancel()
		sm.RunNow(runCtx, "expiry-digest", digest)
		return
	}

	if err := sm.RegisterDigestJob(cfg.Digest.Cron, digest, scheduler.DefaultDigestTimeout); err != nil {
		log.Fatalw("failed to register digest job", "cron", cfg.Digest.Cron, "error", err)
	}
	sm.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infow("shutting down expiry digest worker...")
	if err := sm.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
	}
	log.Infow("expiry digest worker stopped")
}
