package compliance

import (
	"time"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

// SlotResult is the classification of one required document slot.
type SlotResult struct {
	TypeCode       vo.DocumentTypeCode
	Classification vo.SlotClassification
	// DocumentID of the representative document; empty when missing.
	DocumentID string
	// ExpiryDate is nil for missing or non-expiring documents.
	ExpiryDate *time.Time
	// DaysRemaining is only meaningful when ExpiryDate is set.
	DaysRemaining int
}

// ComplianceStatus is the derived compliance summary of one entity.
// Expired slots are counted in ExpiredCount and also listed in MissingTypeCodes.
type ComplianceStatus struct {
	EntityID             string
	EntityName           string
	EntityType           vo.EntityType
	ValidCount           int
	ExpiringCount        int
	ExpiredCount         int
	MissingTypeCodes     []vo.DocumentTypeCode
	Payable              bool
	CompliancePercentage int
	Slots                []SlotResult
	EvaluatedAt          time.Time
}

// AbsentCount is the number of slots with no document at all.
func (s *ComplianceStatus) AbsentCount() int {
	return len(s.MissingTypeCodes) - s.ExpiredCount
}

// CatalogSize is the number of slots that were evaluated.
func (s *ComplianceStatus) CatalogSize() int {
	return len(s.Slots)
}
