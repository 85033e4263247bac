package compliance

import (
	"fmt"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

// RequirementCatalog maps each entity type to its ordered mandatory document
// codes. It is immutable after construction.
type RequirementCatalog struct {
	entries map[vo.EntityType][]vo.DocumentTypeCode
}

// NewRequirementCatalog copies entries and rejects invalid types, unknown codes
// and codes repeated within one entry. An entry with no codes is allowed.
func NewRequirementCatalog(entries map[vo.EntityType][]vo.DocumentTypeCode) (*RequirementCatalog, error) {
	out := make(map[vo.EntityType][]vo.DocumentTypeCode, len(entries))
	for et, codes := range entries {
		if !et.IsValid() {
			return nil, fmt.Errorf("catalog: invalid entity type %q", et)
		}
		seen := make(map[vo.DocumentTypeCode]struct{}, len(codes))
		list := make([]vo.DocumentTypeCode, 0, len(codes))
		for _, code := range codes {
			if !code.IsValid() {
				return nil, fmt.Errorf("catalog: entity type %s: invalid document type code %q", et, code)
			}
			if _, dup := seen[code]; dup {
				return nil, fmt.Errorf("catalog: entity type %s: %w: %s", et, ErrDuplicateRequirement, code)
			}
			seen[code] = struct{}{}
			list = append(list, code)
		}
		out[et] = list
	}
	return &RequirementCatalog{entries: out}, nil
}

// DefaultCatalog returns the standard requirements for Italian construction sites.
func DefaultCatalog() *RequirementCatalog {
	c, err := NewRequirementCatalog(map[vo.EntityType][]vo.DocumentTypeCode{
		vo.EntityTypeSupplier: {
			vo.DocumentTypeDURC,
			vo.DocumentTypeVisuraCamerale,
			vo.DocumentTypeInsurance,
		},
		vo.EntityTypeCompany: {
			vo.DocumentTypeDURC,
			vo.DocumentTypeVisuraCamerale,
			vo.DocumentTypeInsurance,
			vo.DocumentTypeDVR,
			vo.DocumentTypePOS,
		},
		vo.EntityTypeWorker: {
			vo.DocumentTypeUNILAV,
			vo.DocumentTypeMedicalFitness,
			vo.DocumentTypeSafetyTraining,
			vo.DocumentTypeIDDocument,
		},
		vo.EntityTypeOrganization: {
			vo.DocumentTypeDURC,
			vo.DocumentTypeVisuraCamerale,
			vo.DocumentTypeInsurance,
			vo.DocumentTypeDVR,
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Requirements returns a copy of the codes for et in catalog order.
func (c *RequirementCatalog) Requirements(et vo.EntityType) ([]vo.DocumentTypeCode, error) {
	codes, ok := c.entries[et]
	if !ok {
		return nil, &UnknownEntityTypeError{EntityType: et}
	}
	out := make([]vo.DocumentTypeCode, len(codes))
	copy(out, codes)
	return out, nil
}

// Requires reports whether code is mandatory for et.
func (c *RequirementCatalog) Requires(et vo.EntityType, code vo.DocumentTypeCode) bool {
	for _, required := range c.entries[et] {
		if required == code {
			return true
		}
	}
	return false
}

// EntityTypes lists configured types in display order.
func (c *RequirementCatalog) EntityTypes() []vo.EntityType {
	out := make([]vo.EntityType, 0, len(c.entries))
	for _, et := range vo.AllEntityTypes() {
		if _, ok := c.entries[et]; ok {
			out = append(out, et)
		}
	}
	return out
}
