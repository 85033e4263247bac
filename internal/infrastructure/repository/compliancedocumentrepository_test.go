package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/infrastructure/persistence/models"
	"github.com/egest-app/egest/internal/shared/db"
)

var testNow = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

func newDocument(t *testing.T, id, entityID string, et vo.EntityType, code vo.DocumentTypeCode, expiry string) *compliance.ComplianceDocument {
	t.Helper()
	d, err := compliance.NewComplianceDocument(compliance.NewDocumentParams{
		ID:         id,
		EntityID:   entityID,
		EntityType: et,
		TypeCode:   code,
		IssueDate:  "2025-01-15",
		ExpiryDate: expiry,
		FileName:   id + ".pdf",
		Metadata:   map[string]string{"uploaded_by": "ufficio tecnico"},
	}, testNow)
	require.NoError(t, err)
	return d
}

func TestComplianceDocumentRepository_CreateAndGet(t *testing.T) {
	repo := NewComplianceDocumentRepository(setupTestDB(t))
	ctx := context.Background()

	d := newDocument(t, "doc-1", "sup-1", vo.EntityTypeSupplier, vo.DocumentTypeDURC, "2025-09-30")
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, "doc-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sup-1", got.EntityID())
	assert.Equal(t, vo.DocumentTypeDURC, got.TypeCode())
	assert.Equal(t, "2025-01-15", got.RawIssueDate())
	assert.Equal(t, "2025-09-30", got.RawExpiryDate())
	assert.Equal(t, "ufficio tecnico", got.Metadata()["uploaded_by"])
	assert.Equal(t, testNow, got.CreatedAt())

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestComplianceDocumentRepository_MalformedRowsSurviveLoading(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewComplianceDocumentRepository(gdb)
	ctx := context.Background()

	require.NoError(t, gdb.Create(&models.ComplianceDocumentModel{
		ID:            "legacy",
		EntityID:      "sup-1",
		EntityType:    "supplier",
		TypeCode:      "DURC",
		ExpiryDate:    "31/12/2025",
		ValidityState: "valid",
		CreatedAt:     testNow.UnixMilli(),
	}).Error)

	docs, err := repo.ListByEntity(ctx, vo.EntityTypeSupplier, "sup-1")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	_, err = docs[0].ExpiryDate()
	assert.ErrorIs(t, err, compliance.ErrMalformedDocument)
}

func TestComplianceDocumentRepository_Listing(t *testing.T) {
	repo := NewComplianceDocumentRepository(setupTestDB(t))
	ctx := context.Background()

	for _, d := range []*compliance.ComplianceDocument{
		newDocument(t, "a", "sup-1", vo.EntityTypeSupplier, vo.DocumentTypeDURC, "2025-09-30"),
		newDocument(t, "b", "sup-1", vo.EntityTypeSupplier, vo.DocumentTypeInsurance, ""),
		newDocument(t, "c", "sup-2", vo.EntityTypeSupplier, vo.DocumentTypeDURC, "2025-07-01"),
		newDocument(t, "d", "wrk-1", vo.EntityTypeWorker, vo.DocumentTypeUNILAV, ""),
	} {
		require.NoError(t, repo.Create(ctx, d))
	}

	docs, err := repo.ListByEntity(ctx, vo.EntityTypeSupplier, "sup-1")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	none, err := repo.ListByEntity(ctx, vo.EntityTypeCompany, "sup-1")
	require.NoError(t, err)
	assert.Empty(t, none, "entity type is part of the key")

	grouped, err := repo.ListByEntityType(ctx, vo.EntityTypeSupplier)
	require.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["sup-1"], 2)
	assert.Len(t, grouped["sup-2"], 1)
}

func TestComplianceDocumentRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewComplianceDocumentRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newDocument(t, "a", "cmp-1", vo.EntityTypeCompany, vo.DocumentTypeDVR, "")))
	require.NoError(t, repo.Create(ctx, newDocument(t, "b", "cmp-1", vo.EntityTypeCompany, vo.DocumentTypePOS, "")))
	require.NoError(t, repo.Create(ctx, newDocument(t, "c", "cmp-2", vo.EntityTypeCompany, vo.DocumentTypePOS, "")))

	require.NoError(t, repo.Delete(ctx, "a"))
	require.NoError(t, repo.Delete(ctx, "a"), "deleting twice is not an error")

	tm := db.NewTransactionManager(gdb)
	var removed int64
	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = repo.DeleteByEntity(txCtx, vo.EntityTypeCompany, "cmp-1")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	grouped, err := repo.ListByEntityType(ctx, vo.EntityTypeCompany)
	require.NoError(t, err)
	assert.Len(t, grouped, 1)
	assert.Contains(t, grouped, "cmp-2")
}
