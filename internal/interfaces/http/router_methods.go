package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/egest-app/egest/internal/application/compliance/usecases"
)

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// OverviewUseCase returns the overview use case for non-HTTP callers.
func (r *Router) OverviewUseCase() *usecases.GetComplianceOverviewUseCase {
	return r.ucs.overviewUC
}

// StartScheduler starts the digest scheduler when the digest is enabled.
func (r *Router) StartScheduler() {
	if r.schedulerManager != nil {
		r.schedulerManager.Start()
	}
}

// Shutdown stops background services and releases the Redis client. The
// database and the dispatcher belong to the caller.
func (r *Router) Shutdown(ctx context.Context) {
	if r.schedulerManager != nil {
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := r.schedulerManager.Stop(); err != nil {
				r.log.Errorw("failed to stop scheduler", "error", err)
			}
		}()
		select {
		case <-done:
		case <-ctx.Done():
			r.log.Warnw("scheduler did not stop before shutdown deadline")
		}
	}

	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			r.log.Errorw("failed to close redis client", "error", err)
		}
	}

	r.log.Infow("router shutdown completed")
}
