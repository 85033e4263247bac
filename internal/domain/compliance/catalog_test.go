package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, vo.AllEntityTypes(), c.EntityTypes())

	supplier, err := c.Requirements(vo.EntityTypeSupplier)
	require.NoError(t, err)
	assert.Equal(t, []vo.DocumentTypeCode{
		vo.DocumentTypeDURC, vo.DocumentTypeVisuraCamerale, vo.DocumentTypeInsurance,
	}, supplier)

	assert.True(t, c.Requires(vo.EntityTypeWorker, vo.DocumentTypeUNILAV))
	assert.False(t, c.Requires(vo.EntityTypeWorker, vo.DocumentTypeDURC))
}

func TestNewRequirementCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries map[vo.EntityType][]vo.DocumentTypeCode
		wantErr error
	}{
		{
			name:    "duplicate code",
			entries: map[vo.EntityType][]vo.DocumentTypeCode{vo.EntityTypeSupplier: {vo.DocumentTypeDURC, vo.DocumentTypeDURC}},
			wantErr: ErrDuplicateRequirement,
		},
		{
			name:    "unknown code",
			entries: map[vo.EntityType][]vo.DocumentTypeCode{vo.EntityTypeSupplier: {"DRUC"}},
		},
		{
			name:    "unknown entity type",
			entries: map[vo.EntityType][]vo.DocumentTypeCode{"subcontractor": {vo.DocumentTypeDURC}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewRequirementCatalog(tt.entries)
			assert.Nil(t, c)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequirementCatalog_IsImmutable(t *testing.T) {
	codes := []vo.DocumentTypeCode{vo.DocumentTypeDURC, vo.DocumentTypeInsurance}
	c, err := NewRequirementCatalog(map[vo.EntityType][]vo.DocumentTypeCode{vo.EntityTypeSupplier: codes})
	require.NoError(t, err)

	codes[0] = vo.DocumentTypeSOA
	got, err := c.Requirements(vo.EntityTypeSupplier)
	require.NoError(t, err)
	assert.Equal(t, vo.DocumentTypeDURC, got[0])

	got[1] = vo.DocumentTypeSOA
	again, _ := c.Requirements(vo.EntityTypeSupplier)
	assert.Equal(t, vo.DocumentTypeInsurance, again[1])
}

func TestRequirementCatalog_UnknownType(t *testing.T) {
	c, err := NewRequirementCatalog(map[vo.EntityType][]vo.DocumentTypeCode{vo.EntityTypeSupplier: {}})
	require.NoError(t, err)

	_, err = c.Requirements(vo.EntityTypeCompany)
	assert.ErrorIs(t, err, ErrUnknownEntityType)

	empty, err := c.Requirements(vo.EntityTypeSupplier)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, []vo.EntityType{vo.EntityTypeSupplier}, c.EntityTypes())
}
