package compliance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

func TestAggregateStatuses_PayableFlags(t *testing.T) {
	statuses := []*ComplianceStatus{
		{EntityID: "a", Payable: true},
		{EntityID: "b", Payable: false},
		{EntityID: "c", Payable: true},
	}

	stats := AggregateStatuses(statuses)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.PayableCount)
	assert.Equal(t, 1, stats.BlockedCount)
}

func TestAggregateStatuses_ExpiringAndCritical(t *testing.T) {
	statuses := []*ComplianceStatus{
		{EntityID: "a", Payable: true, ExpiringCount: 2},
		{EntityID: "b", ExpiredCount: 1, ExpiringCount: 1},
		{EntityID: "c", ExpiredCount: 3},
		nil,
	}

	stats := AggregateStatuses(statuses)
	assert.Equal(t, AggregateStats{
		Total:         3,
		PayableCount:  1,
		BlockedCount:  2,
		ExpiringCount: 2,
		CriticalCount: 2,
	}, stats)
}

func TestAggregateStatuses_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	statuses := make([]*ComplianceStatus, 40)
	for i := range statuses {
		statuses[i] = &ComplianceStatus{
			Payable:       rng.Intn(2) == 0,
			ExpiringCount: rng.Intn(3),
			ExpiredCount:  rng.Intn(2),
		}
	}
	want := AggregateStatuses(statuses)

	for i := 0; i < 20; i++ {
		shuffled := append([]*ComplianceStatus(nil), statuses...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, AggregateStatuses(shuffled))
	}
}

func TestAggregateStatuses_Empty(t *testing.T) {
	assert.Equal(t, AggregateStats{}, AggregateStatuses(nil))
}

func TestAggregator_EvaluateBatchCollectsFailures(t *testing.T) {
	agg := NewAggregator(newTestEvaluator(twoSlotCatalog()))

	result := agg.EvaluateBatch([]EntityDocuments{
		{
			EntityID: "ok", EntityName: "Fornitore Uno", EntityType: vo.EntityTypeSupplier,
			Documents: []*ComplianceDocument{doc("d1", durc, intPtr(100)), doc("d2", insurance, intPtr(100))},
		},
		{
			EntityID: "unknown", EntityName: "Operaio", EntityType: vo.EntityTypeWorker,
		},
		{
			EntityID: "malformed", EntityName: "Fornitore Due", EntityType: vo.EntityTypeSupplier,
			Documents: []*ComplianceDocument{rawDoc("bad", durc, "", "n/a", fixedNow)},
		},
		{
			EntityID: "blocked", EntityName: "Fornitore Tre", EntityType: vo.EntityTypeSupplier,
			Documents: []*ComplianceDocument{doc("d3", durc, intPtr(-1))},
		},
	})

	require.Len(t, result.Statuses, 2)
	assert.Equal(t, "ok", result.Statuses[0].EntityID)
	assert.Equal(t, "blocked", result.Statuses[1].EntityID)

	require.Equal(t, 2, result.FailedCount())
	assert.Equal(t, "unknown", result.Failures[0].EntityID)
	assert.ErrorIs(t, result.Failures[0].Err, ErrUnknownEntityType)
	assert.Equal(t, "malformed", result.Failures[1].EntityID)
	assert.ErrorIs(t, result.Failures[1].Err, ErrMalformedDocument)

	assert.Equal(t, AggregateStats{
		Total:         2,
		PayableCount:  1,
		BlockedCount:  1,
		CriticalCount: 1,
	}, result.Stats)
}
