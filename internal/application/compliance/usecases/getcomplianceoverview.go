package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/infrastructure/metrics"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

type GetComplianceOverviewQuery struct {
	// EntityType restricts the overview to one type; empty means all catalog types.
	EntityType string
}

type OverviewOptions struct {
	FetchConcurrency int
	Timeout          time.Duration
}

type GetComplianceOverviewUseCase struct {
	entityRepo compliance.EntityRepository
	docRepo    compliance.DocumentRepository
	evaluator  *compliance.Evaluator
	aggregator *compliance.Aggregator
	opts       OverviewOptions
	metrics    *metrics.Metrics
	logger     logger.Interface
}

func NewGetComplianceOverviewUseCase(
	entityRepo compliance.EntityRepository,
	docRepo compliance.DocumentRepository,
	evaluator *compliance.Evaluator,
	opts OverviewOptions,
	m *metrics.Metrics,
	logger logger.Interface,
) *GetComplianceOverviewUseCase {
	if opts.FetchConcurrency < 1 {
		opts.FetchConcurrency = 1
	}
	return &GetComplianceOverviewUseCase{
		entityRepo: entityRepo,
		docRepo:    docRepo,
		evaluator:  evaluator,
		aggregator: compliance.NewAggregator(evaluator),
		opts:       opts,
		metrics:    m,
		logger:     logger,
	}
}

func (uc *GetComplianceOverviewUseCase) Execute(ctx context.Context, query GetComplianceOverviewQuery) (*dto.ComplianceOverviewDTO, error) {
	var filter *vo.EntityType
	if query.EntityType != "" {
		et, err := vo.ParseEntityType(query.EntityType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter = &et
	}

	result, err := uc.Evaluate(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.ToComplianceOverviewDTO(result, biztime.NowUTC()), nil
}

// Evaluate loads and evaluates every entity of the requested types. Entities
// that fail evaluation are reported in Failures; only fetch errors and the
// overall timeout fail the call. Statuses and failures are sorted by name in
// Italian collation order.
func (uc *GetComplianceOverviewUseCase) Evaluate(ctx context.Context, entityType *vo.EntityType) (*compliance.BatchResult, error) {
	start := time.Now()
	defer func() { uc.metrics.ObserveOverviewLatency(time.Since(start)) }()

	types, err := uc.typesFor(entityType)
	if err != nil {
		return nil, err
	}

	if uc.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.Timeout)
		defer cancel()
	}

	batches := make([][]compliance.EntityDocuments, len(types))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.FetchConcurrency)
	for i, et := range types {
		i, et := i, et
		g.Go(func() error {
			batch, err := uc.fetch(gctx, et)
			if err != nil {
				return err
			}
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			uc.logger.Errorw("compliance overview timed out", "timeout", uc.opts.Timeout)
			return nil, errors.NewUnavailableError("compliance overview timed out")
		}
		uc.logger.Errorw("failed to load compliance overview", "error", err)
		return nil, errors.NewInternalError("failed to load compliance overview")
	}

	var all []compliance.EntityDocuments
	for _, b := range batches {
		all = append(all, b...)
	}

	result := uc.aggregator.EvaluateBatch(all)
	for _, s := range result.Statuses {
		uc.metrics.IncrementEvaluation(s.EntityType.String(), outcomeOf(s))
	}
	for _, f := range result.Failures {
		uc.metrics.IncrementEvaluation(f.EntityType.String(), metrics.OutcomeFailed)
		uc.logger.Warnw("entity excluded from overview", "entity_id", f.EntityID, "error", f.Err)
	}

	sortByName(result)

	uc.logger.Infow("compliance overview evaluated",
		"total", result.Stats.Total,
		"payable", result.Stats.PayableCount,
		"blocked", result.Stats.BlockedCount,
		"failed", result.FailedCount(),
		"duration", time.Since(start),
	)
	return result, nil
}

func (uc *GetComplianceOverviewUseCase) typesFor(entityType *vo.EntityType) ([]vo.EntityType, error) {
	if entityType == nil {
		return uc.evaluator.Catalog().EntityTypes(), nil
	}
	if _, err := uc.evaluator.Catalog().Requirements(*entityType); err != nil {
		return nil, evaluationError(err)
	}
	return []vo.EntityType{*entityType}, nil
}

func (uc *GetComplianceOverviewUseCase) fetch(ctx context.Context, et vo.EntityType) ([]compliance.EntityDocuments, error) {
	entities, _, err := uc.entityRepo.List(ctx, compliance.EntityFilter{EntityType: &et})
	if err != nil {
		return nil, fmt.Errorf("list %s entities: %w", et, err)
	}
	if len(entities) == 0 {
		return nil, nil
	}

	docs, err := uc.docRepo.ListByEntityType(ctx, et)
	if err != nil {
		return nil, fmt.Errorf("list %s documents: %w", et, err)
	}

	out := make([]compliance.EntityDocuments, 0, len(entities))
	for _, e := range entities {
		out = append(out, compliance.EntityDocuments{
			EntityID:   e.ID(),
			EntityName: e.Name(),
			EntityType: e.EntityType(),
			Documents:  docs[e.ID()],
		})
	}
	return out, nil
}

func sortByName(r *compliance.BatchResult) {
	c := collate.New(language.Italian, collate.IgnoreCase, collate.IgnoreDiacritics)
	less := func(nameA, idA, nameB, idB string) bool {
		if cmp := c.CompareString(nameA, nameB); cmp != 0 {
			return cmp < 0
		}
		return idA < idB
	}
	sort.SliceStable(r.Statuses, func(i, j int) bool {
		return less(r.Statuses[i].EntityName, r.Statuses[i].EntityID, r.Statuses[j].EntityName, r.Statuses[j].EntityID)
	})
	sort.SliceStable(r.Failures, func(i, j int) bool {
		return less(r.Failures[i].EntityName, r.Failures[i].EntityID, r.Failures[j].EntityName, r.Failures[j].EntityID)
	})
}
