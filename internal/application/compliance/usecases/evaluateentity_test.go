package usecases

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/infrastructure/metrics"
	"github.com/egest-app/egest/internal/shared/logger"
)

func TestEvaluateEntityUseCase_FreshEvaluation(t *testing.T) {
	docs := payableSupplierDocs("sup-1")
	docs[0] = storedDoc("sup-1-durc", "sup-1", vo.EntityTypeSupplier, vo.DocumentTypeDURC, dateIn(12))

	docRepo := &mockDocumentRepository{
		ListByEntityFunc: func(ctx context.Context, et vo.EntityType, id string) ([]*compliance.ComplianceDocument, error) {
			return docs, nil
		},
	}
	var cached *compliance.ComplianceStatus
	cache := &mockStatusCache{
		SetFunc: func(ctx context.Context, s *compliance.ComplianceStatus) error {
			cached = s
			return nil
		},
	}
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	uc := NewEvaluateEntityUseCase(supplierRepo(), docRepo, testEvaluator(), cache, m, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), EvaluateEntityQuery{EntityID: "sup-1"})
	require.NoError(t, err)

	assert.True(t, got.Payable)
	assert.Equal(t, 100, got.CompliancePercentage)
	assert.Equal(t, 2, got.ValidCount)
	assert.Equal(t, 1, got.ExpiringCount)
	require.Len(t, got.Slots, 3)
	assert.Equal(t, "DURC", got.Slots[0].TypeCode)
	assert.Equal(t, "expiring", got.Slots[0].Classification)
	require.NotNil(t, got.Slots[0].DaysRemaining)
	assert.Equal(t, 12, *got.Slots[0].DaysRemaining)

	require.NotNil(t, cached)
	assert.Equal(t, "sup-1", cached.EntityID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(metrics.CacheMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("supplier", metrics.OutcomePayable)))
}

func TestEvaluateEntityUseCase_CacheHit(t *testing.T) {
	hit := &compliance.ComplianceStatus{
		EntityID:             "sup-1",
		EntityName:           "Fornitore Uno",
		EntityType:           vo.EntityTypeSupplier,
		MissingTypeCodes:     []vo.DocumentTypeCode{vo.DocumentTypeDURC},
		CompliancePercentage: 67,
		EvaluatedAt:          testNow,
	}
	docRepo := &mockDocumentRepository{
		ListByEntityFunc: func(ctx context.Context, et vo.EntityType, id string) ([]*compliance.ComplianceDocument, error) {
			t.Fatal("documents must not be loaded on a cache hit")
			return nil, nil
		},
	}
	cache := &mockStatusCache{
		GetFunc: func(ctx context.Context, et vo.EntityType, id string) (*compliance.ComplianceStatus, error) {
			return hit, nil
		},
	}

	uc := NewEvaluateEntityUseCase(supplierRepo(), docRepo, testEvaluator(), cache, nil, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), EvaluateEntityQuery{EntityID: "sup-1"})
	require.NoError(t, err)
	assert.False(t, got.Payable)
	assert.Equal(t, 67, got.CompliancePercentage)
	assert.Equal(t, []string{"DURC"}, got.MissingTypeCodes)
}

func TestEvaluateEntityUseCase_SkipCacheAndCacheErrors(t *testing.T) {
	getCalled := false
	cache := &mockStatusCache{
		GetFunc: func(ctx context.Context, et vo.EntityType, id string) (*compliance.ComplianceStatus, error) {
			getCalled = true
			return nil, stderrors.New("redis down")
		},
		SetFunc: func(ctx context.Context, s *compliance.ComplianceStatus) error {
			return stderrors.New("redis down")
		},
	}
	docRepo := &mockDocumentRepository{
		ListByEntityFunc: func(ctx context.Context, et vo.EntityType, id string) ([]*compliance.ComplianceDocument, error) {
			return nil, nil
		},
	}
	uc := NewEvaluateEntityUseCase(supplierRepo(), docRepo, testEvaluator(), cache, nil, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), EvaluateEntityQuery{EntityID: "sup-1", SkipCache: true})
	require.NoError(t, err)
	assert.False(t, getCalled)
	assert.False(t, got.Payable)
	assert.Equal(t, 0, got.CompliancePercentage)
	assert.Len(t, got.MissingTypeCodes, 3)

	got, err = uc.Execute(context.Background(), EvaluateEntityQuery{EntityID: "sup-1"})
	require.NoError(t, err)
	assert.True(t, getCalled)
	assert.Equal(t, "sup-1", got.EntityID)
}

func TestEvaluateEntityUseCase_Errors(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewEvaluateEntityUseCase(supplierRepo(), &mockDocumentRepository{}, testEvaluator(), &mockStatusCache{}, nil, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), EvaluateEntityQuery{})
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})

	t.Run("entity not found", func(t *testing.T) {
		uc := NewEvaluateEntityUseCase(supplierRepo(), &mockDocumentRepository{}, testEvaluator(), &mockStatusCache{}, nil, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), EvaluateEntityQuery{EntityID: "ghost"})
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("malformed stored date", func(t *testing.T) {
		docRepo := &mockDocumentRepository{
			ListByEntityFunc: func(ctx context.Context, et vo.EntityType, id string) ([]*compliance.ComplianceDocument, error) {
				return []*compliance.ComplianceDocument{
					storedDoc("bad-1", "sup-1", vo.EntityTypeSupplier, vo.DocumentTypeDURC, "31/02/2025"),
				}, nil
			},
		}
		setCalled := false
		cache := &mockStatusCache{SetFunc: func(ctx context.Context, s *compliance.ComplianceStatus) error {
			setCalled = true
			return nil
		}}
		uc := NewEvaluateEntityUseCase(supplierRepo(), docRepo, testEvaluator(), cache, nil, logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), EvaluateEntityQuery{EntityID: "sup-1"})
		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		assert.Contains(t, err.Error(), "bad-1")
		assert.False(t, setCalled)
	})

	t.Run("entity type outside catalog", func(t *testing.T) {
		catalog, err := compliance.NewRequirementCatalog(map[vo.EntityType][]vo.DocumentTypeCode{
			vo.EntityTypeWorker: {vo.DocumentTypeUNILAV},
		})
		require.NoError(t, err)
		ev := compliance.NewEvaluator(catalog, compliance.WithClock(testClock))

		uc := NewEvaluateEntityUseCase(supplierRepo(), &mockDocumentRepository{}, ev, &mockStatusCache{}, nil, logger.NewNopLogger())
		_, err = uc.Execute(context.Background(), EvaluateEntityQuery{EntityID: "sup-1"})
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})
}
