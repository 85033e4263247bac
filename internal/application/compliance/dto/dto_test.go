package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

func TestToComplianceStatusDTO(t *testing.T) {
	assert.Nil(t, ToComplianceStatusDTO(nil))

	expiry := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	s := &compliance.ComplianceStatus{
		EntityID:             "sup-1",
		EntityName:           "Laterizi Verdi",
		EntityType:           vo.EntityTypeSupplier,
		ExpiringCount:        1,
		MissingTypeCodes:     []vo.DocumentTypeCode{vo.DocumentTypeInsurance},
		CompliancePercentage: 50,
		Slots: []compliance.SlotResult{
			{TypeCode: vo.DocumentTypeDURC, Classification: vo.SlotExpiring, DocumentID: "d1", ExpiryDate: &expiry, DaysRemaining: 10},
			{TypeCode: vo.DocumentTypeInsurance, Classification: vo.SlotMissing},
		},
	}

	out := ToComplianceStatusDTO(s)
	require.NotNil(t, out)
	assert.Equal(t, "supplier", out.EntityType)
	assert.Equal(t, []string{"INSURANCE"}, out.MissingTypeCodes)
	require.Len(t, out.Slots, 2)

	durc := out.Slots[0]
	assert.Equal(t, "expiring", durc.Classification)
	require.NotNil(t, durc.ExpiryDate)
	assert.Equal(t, "2025-06-20", *durc.ExpiryDate)
	require.NotNil(t, durc.DaysRemaining)
	assert.Equal(t, 10, *durc.DaysRemaining)
	assert.NotEmpty(t, durc.Label)

	missing := out.Slots[1]
	assert.Nil(t, missing.ExpiryDate)
	assert.Nil(t, missing.DaysRemaining)
	assert.Empty(t, missing.DocumentID)
}

func TestToComplianceOverviewDTO(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	r := &compliance.BatchResult{
		Statuses: []*compliance.ComplianceStatus{{EntityID: "a", Payable: true, MissingTypeCodes: []vo.DocumentTypeCode{}}},
		Failures: []compliance.EntityFailure{{EntityID: "b", EntityType: vo.EntityTypeWorker, Err: errors.New("boom")}},
		Stats:    compliance.AggregateStats{Total: 1, PayableCount: 1},
	}

	out := ToComplianceOverviewDTO(r, now)
	require.Len(t, out.Statuses, 1)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, "boom", out.Failures[0].Error)
	assert.Equal(t, "worker", out.Failures[0].EntityType)
	assert.Equal(t, 1, out.Stats.PayableCount)
	assert.Equal(t, now, out.EvaluatedAt)
}

func TestToCatalogDTO(t *testing.T) {
	out := ToCatalogDTO(compliance.DefaultCatalog(), 30)

	assert.Equal(t, 30, out.ExpiringWindowDays)
	require.Len(t, out.EntityTypes, len(vo.AllEntityTypes()))
	assert.Equal(t, "supplier", out.EntityTypes[0].EntityType)
	assert.Equal(t, "DURC", out.EntityTypes[0].Requirements[0].Code)
	assert.NotEmpty(t, out.EntityTypes[0].Requirements[0].Label)
}

func TestToDocumentDTO(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	d := compliance.ReconstructComplianceDocument(
		"doc-1", "wrk-1", vo.EntityTypeWorker, vo.DocumentTypeUNILAV,
		"2025-01-01", "", vo.ValidityValid, "unilav.pdf", "", nil, created,
	)

	out := ToDocumentDTO(d)
	assert.Equal(t, "UNILAV", out.TypeCode)
	assert.Equal(t, "2025-01-01", out.IssueDate)
	assert.Empty(t, out.ExpiryDate)
	assert.Equal(t, "valid", out.ValidityState)
	assert.Equal(t, created, out.CreatedAt)
	assert.Nil(t, ToDocumentDTO(nil))
}
