package compliance

import (
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

// AggregateStats are the dashboard counters over a set of statuses.
type AggregateStats struct {
	Total         int
	PayableCount  int
	BlockedCount  int
	ExpiringCount int // entities with at least one expiring slot
	CriticalCount int // entities with at least one expired slot
}

// AggregateStatuses is independent of the order of statuses. Nil entries are skipped.
func AggregateStatuses(statuses []*ComplianceStatus) AggregateStats {
	var stats AggregateStats
	for _, s := range statuses {
		if s == nil {
			continue
		}
		stats.Total++
		if s.Payable {
			stats.PayableCount++
		}
		if s.ExpiringCount > 0 {
			stats.ExpiringCount++
		}
		if s.ExpiredCount > 0 {
			stats.CriticalCount++
		}
	}
	stats.BlockedCount = stats.Total - stats.PayableCount
	return stats
}

// EntityDocuments is one entity with the documents already fetched for it.
type EntityDocuments struct {
	EntityID   string
	EntityName string
	EntityType vo.EntityType
	Documents  []*ComplianceDocument
}

// EntityFailure records an entity that could not be evaluated.
type EntityFailure struct {
	EntityID   string
	EntityName string
	EntityType vo.EntityType
	Err        error
}

// BatchResult separates evaluated entities from failed ones. Stats cover
// Statuses only.
type BatchResult struct {
	Statuses []*ComplianceStatus
	Failures []EntityFailure
	Stats    AggregateStats
}

func (r *BatchResult) FailedCount() int {
	return len(r.Failures)
}

// Aggregator evaluates collections of entities.
type Aggregator struct {
	evaluator *Evaluator
}

func NewAggregator(evaluator *Evaluator) *Aggregator {
	return &Aggregator{evaluator: evaluator}
}

// EvaluateBatch evaluates every entity. A failing entity is recorded in
// Failures and never stops the rest of the batch. Input order is preserved
// within Statuses and Failures.
func (a *Aggregator) EvaluateBatch(entities []EntityDocuments) *BatchResult {
	result := &BatchResult{
		Statuses: make([]*ComplianceStatus, 0, len(entities)),
		Failures: []EntityFailure{},
	}
	for _, ent := range entities {
		status, err := a.evaluator.Evaluate(ent.EntityID, ent.EntityName, ent.EntityType, ent.Documents)
		if err != nil {
			result.Failures = append(result.Failures, EntityFailure{
				EntityID:   ent.EntityID,
				EntityName: ent.EntityName,
				EntityType: ent.EntityType,
				Err:        err,
			})
			continue
		}
		result.Statuses = append(result.Statuses, status)
	}
	result.Stats = AggregateStatuses(result.Statuses)
	return result
}
