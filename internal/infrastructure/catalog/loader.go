// Package catalog loads the requirement catalog from a YAML file.
package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

// File is the on-disk layout:
//
//	requirements:
//	  supplier: [DURC, VISURA_CAMERALE, INSURANCE]
//	  worker: [UNILAV, MEDICAL_FITNESS]
type File struct {
	Requirements map[string][]string `yaml:"requirements"`
}

// LoadCatalogFile reads path. An empty path returns the built-in catalog.
func LoadCatalogFile(path string) (*compliance.RequirementCatalog, error) {
	if path == "" {
		return compliance.DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a catalog document. Unknown keys are rejected.
func Parse(raw []byte) (*compliance.RequirementCatalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(f.Requirements) == 0 {
		return nil, fmt.Errorf("catalog file defines no requirements")
	}

	entries := make(map[vo.EntityType][]vo.DocumentTypeCode, len(f.Requirements))
	for rawType, rawCodes := range f.Requirements {
		et, err := vo.ParseEntityType(rawType)
		if err != nil {
			return nil, err
		}
		codes := make([]vo.DocumentTypeCode, 0, len(rawCodes))
		for _, c := range rawCodes {
			code, err := vo.ParseDocumentTypeCode(c)
			if err != nil {
				return nil, fmt.Errorf("entity type %s: %w", et, err)
			}
			codes = append(codes, code)
		}
		entries[et] = codes
	}

	return compliance.NewRequirementCatalog(entries)
}
