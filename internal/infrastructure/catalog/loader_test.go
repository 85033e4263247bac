package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

func TestLoadCatalogFile_EmptyPathUsesDefault(t *testing.T) {
	c, err := LoadCatalogFile("")
	require.NoError(t, err)

	reqs, err := c.Requirements(vo.EntityTypeSupplier)
	require.NoError(t, err)
	assert.Equal(t, []vo.DocumentTypeCode{vo.DocumentTypeDURC, vo.DocumentTypeVisuraCamerale, vo.DocumentTypeInsurance}, reqs)
}

func TestLoadCatalogFile_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
requirements:
  supplier: [DURC, INSURANCE]
  worker:
    - UNILAV
`), 0o600))

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)

	reqs, err := c.Requirements(vo.EntityTypeSupplier)
	require.NoError(t, err)
	assert.Equal(t, []vo.DocumentTypeCode{vo.DocumentTypeDURC, vo.DocumentTypeInsurance}, reqs)

	_, err = c.Requirements(vo.EntityTypeCompany)
	assert.Error(t, err, "types not listed in the file are unknown")
}

func TestLoadCatalogFile_MissingFile(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty document", "requirements: {}\n"},
		{"unknown field", "requirement:\n  supplier: [DURC]\n"},
		{"unknown entity type", "requirements:\n  tenant: [DURC]\n"},
		{"unknown document code", "requirements:\n  supplier: [PASSPORT]\n"},
		{"duplicate code", "requirements:\n  supplier: [DURC, DURC]\n"},
		{"not yaml", "requirements: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
