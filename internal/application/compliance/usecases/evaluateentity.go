package usecases

import (
	"context"
	"time"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/infrastructure/metrics"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

type EvaluateEntityQuery struct {
	EntityID string
	// SkipCache forces a fresh evaluation and refreshes the cached entry.
	SkipCache bool
}

type EvaluateEntityUseCase struct {
	entityRepo compliance.EntityRepository
	docRepo    compliance.DocumentRepository
	evaluator  *compliance.Evaluator
	cache      StatusCache
	metrics    *metrics.Metrics
	logger     logger.Interface
}

func NewEvaluateEntityUseCase(
	entityRepo compliance.EntityRepository,
	docRepo compliance.DocumentRepository,
	evaluator *compliance.Evaluator,
	cache StatusCache,
	m *metrics.Metrics,
	logger logger.Interface,
) *EvaluateEntityUseCase {
	return &EvaluateEntityUseCase{
		entityRepo: entityRepo,
		docRepo:    docRepo,
		evaluator:  evaluator,
		cache:      cache,
		metrics:    m,
		logger:     logger,
	}
}

func (uc *EvaluateEntityUseCase) Execute(ctx context.Context, query EvaluateEntityQuery) (*dto.ComplianceStatusDTO, error) {
	if query.EntityID == "" {
		return nil, errors.NewValidationError("entity ID is required")
	}

	entity, err := uc.entityRepo.GetByID(ctx, query.EntityID)
	if err != nil {
		uc.logger.Errorw("failed to get entity", "entity_id", query.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to get entity")
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("entity not found", query.EntityID)
	}

	if !query.SkipCache {
		cached, err := uc.cache.Get(ctx, entity.EntityType(), entity.ID())
		switch {
		case err != nil:
			uc.metrics.IncrementCacheLookup(metrics.CacheError)
			uc.logger.Warnw("failed to read cached compliance status", "entity_id", entity.ID(), "error", err)
		case cached != nil:
			uc.metrics.IncrementCacheLookup(metrics.CacheHit)
			return dto.ToComplianceStatusDTO(cached), nil
		default:
			uc.metrics.IncrementCacheLookup(metrics.CacheMiss)
		}
	}

	start := time.Now()
	docs, err := uc.docRepo.ListByEntity(ctx, entity.EntityType(), entity.ID())
	if err != nil {
		uc.logger.Errorw("failed to list entity documents", "entity_id", entity.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list documents")
	}

	status, err := uc.evaluator.Evaluate(entity.ID(), entity.Name(), entity.EntityType(), docs)
	uc.metrics.ObserveEvaluateLatency(entity.EntityType().String(), time.Since(start))
	if err != nil {
		uc.metrics.IncrementEvaluation(entity.EntityType().String(), metrics.OutcomeFailed)
		uc.logger.Warnw("compliance evaluation failed", "entity_id", entity.ID(), "error", err)
		return nil, evaluationError(err)
	}
	uc.metrics.IncrementEvaluation(entity.EntityType().String(), outcomeOf(status))

	if err := uc.cache.Set(ctx, status); err != nil {
		uc.logger.Warnw("failed to cache compliance status", "entity_id", entity.ID(), "error", err)
	}

	uc.logger.Infow("entity evaluated",
		"entity_id", entity.ID(),
		"entity_type", entity.EntityType(),
		"payable", status.Payable,
		"compliance_percentage", status.CompliancePercentage,
	)

	return dto.ToComplianceStatusDTO(status), nil
}

func outcomeOf(s *compliance.ComplianceStatus) string {
	if s.Payable {
		return metrics.OutcomePayable
	}
	return metrics.OutcomeBlocked
}
