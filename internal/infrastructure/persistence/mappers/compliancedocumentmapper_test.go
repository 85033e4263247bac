package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/infrastructure/persistence/models"
)

func TestComplianceDocumentMapper_ToModel(t *testing.T) {
	mapper := NewComplianceDocumentMapper()
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	doc, err := compliance.NewComplianceDocument(compliance.NewDocumentParams{
		ID:         "doc-1",
		EntityID:   "cmp-1",
		EntityType: vo.EntityTypeCompany,
		TypeCode:   vo.DocumentTypeDVR,
		IssueDate:  "2025-01-01",
		Metadata:   map[string]string{"protocol": "42/2025"},
	}, now)
	require.NoError(t, err)

	model, err := mapper.ToModel(doc)
	require.NoError(t, err)
	assert.Equal(t, "company", model.EntityType)
	assert.Equal(t, "DVR", model.TypeCode)
	assert.Equal(t, "2025-01-01", model.IssueDate)
	assert.Empty(t, model.ExpiryDate)
	assert.Equal(t, now.UnixMilli(), model.CreatedAt)
	assert.JSONEq(t, `{"protocol":"42/2025"}`, string(model.Metadata))
}

func TestComplianceDocumentMapper_ToDomain(t *testing.T) {
	mapper := NewComplianceDocumentMapper()

	t.Run("nil model", func(t *testing.T) {
		doc, err := mapper.ToDomain(nil)
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("keeps unknown type codes and raw dates", func(t *testing.T) {
		doc, err := mapper.ToDomain(&models.ComplianceDocumentModel{
			ID:            "doc-2",
			EntityID:      "sup-1",
			EntityType:    "supplier",
			TypeCode:      "LEGACY_CERT",
			ExpiryDate:    "not-a-date",
			ValidityState: "garbage",
			CreatedAt:     1_700_000_000_000,
		})
		require.NoError(t, err)
		assert.Equal(t, vo.DocumentTypeCode("LEGACY_CERT"), doc.TypeCode())
		assert.Equal(t, "not-a-date", doc.RawExpiryDate())
		assert.Equal(t, vo.ValidityUnknown, doc.ValidityState())
		assert.Equal(t, time.UTC, doc.CreatedAt().Location())
	})

	t.Run("rejects unknown entity type", func(t *testing.T) {
		_, err := mapper.ToDomain(&models.ComplianceDocumentModel{ID: "x", EntityType: "tenant"})
		assert.Error(t, err)
	})

	t.Run("rejects corrupt metadata", func(t *testing.T) {
		_, err := mapper.ToDomain(&models.ComplianceDocumentModel{
			ID:         "x",
			EntityType: "worker",
			Metadata:   []byte(`{broken`),
		})
		assert.Error(t, err)
	})
}
