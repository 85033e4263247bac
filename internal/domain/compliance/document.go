package compliance

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/shared/biztime"
)

const (
	fieldIssueDate  = "issue_date"
	fieldExpiryDate = "expiry_date"

	maxFileNameLength = 255
	maxNotesLength    = 2000
)

// ComplianceDocument is one uploaded document for one entity. Dates are kept
// as the raw strings read from the store and parsed on access, so a bad value
// surfaces as an error at evaluation time instead of being lost on load.
type ComplianceDocument struct {
	id            string
	entityID      string
	entityType    vo.EntityType
	typeCode      vo.DocumentTypeCode
	issueDate     string
	expiryDate    string
	validityState vo.ValidityState
	fileName      string
	notes         string
	metadata      map[string]string
	createdAt     time.Time
}

// NewDocumentParams carries the fields of an upload.
type NewDocumentParams struct {
	ID         string
	EntityID   string
	EntityType vo.EntityType
	TypeCode   vo.DocumentTypeCode
	IssueDate  string
	ExpiryDate string
	FileName   string
	Notes      string
	Metadata   map[string]string
}

// NewComplianceDocument validates an upload. Dates are normalized to YYYY-MM-DD.
func NewComplianceDocument(p NewDocumentParams, now time.Time) (*ComplianceDocument, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("document ID is required")
	}
	if p.EntityID == "" {
		return nil, fmt.Errorf("entity ID is required")
	}
	if !p.EntityType.IsValid() {
		return nil, fmt.Errorf("invalid entity type: %q", p.EntityType)
	}
	if !p.TypeCode.IsValid() {
		return nil, fmt.Errorf("invalid document type code: %q", p.TypeCode)
	}
	if len(p.FileName) > maxFileNameLength {
		return nil, fmt.Errorf("file name exceeds maximum length of %d characters", maxFileNameLength)
	}
	if len(p.Notes) > maxNotesLength {
		return nil, fmt.Errorf("notes exceed maximum length of %d characters", maxNotesLength)
	}

	issue, err := normalizeDate(p.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fieldIssueDate, err)
	}
	expiry, err := normalizeDate(p.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fieldExpiryDate, err)
	}
	if issue != "" && expiry != "" && expiry < issue {
		return nil, fmt.Errorf("expiry date %s is before issue date %s", expiry, issue)
	}

	return &ComplianceDocument{
		id:            p.ID,
		entityID:      p.EntityID,
		entityType:    p.EntityType,
		typeCode:      p.TypeCode,
		issueDate:     issue,
		expiryDate:    expiry,
		validityState: vo.ValidityUnknown,
		fileName:      strings.TrimSpace(p.FileName),
		notes:         p.Notes,
		metadata:      copyMetadata(p.Metadata),
		createdAt:     now.UTC(),
	}, nil
}

// ReconstructComplianceDocument restores a stored document without validating
// its dates.
func ReconstructComplianceDocument(
	id string,
	entityID string,
	entityType vo.EntityType,
	typeCode vo.DocumentTypeCode,
	issueDate string,
	expiryDate string,
	validityState vo.ValidityState,
	fileName string,
	notes string,
	metadata map[string]string,
	createdAt time.Time,
) *ComplianceDocument {
	return &ComplianceDocument{
		id:            id,
		entityID:      entityID,
		entityType:    entityType,
		typeCode:      typeCode,
		issueDate:     issueDate,
		expiryDate:    expiryDate,
		validityState: validityState,
		fileName:      fileName,
		notes:         notes,
		metadata:      copyMetadata(metadata),
		createdAt:     createdAt,
	}
}

func (d *ComplianceDocument) ID() string {
	return d.id
}

func (d *ComplianceDocument) EntityID() string {
	return d.entityID
}

func (d *ComplianceDocument) EntityType() vo.EntityType {
	return d.entityType
}

func (d *ComplianceDocument) TypeCode() vo.DocumentTypeCode {
	return d.typeCode
}

// RawIssueDate is the issue date exactly as stored.
func (d *ComplianceDocument) RawIssueDate() string {
	return d.issueDate
}

// RawExpiryDate is the expiry date exactly as stored.
func (d *ComplianceDocument) RawExpiryDate() string {
	return d.expiryDate
}

func (d *ComplianceDocument) ValidityState() vo.ValidityState {
	return d.validityState
}

func (d *ComplianceDocument) FileName() string {
	return d.fileName
}

func (d *ComplianceDocument) Notes() string {
	return d.notes
}

func (d *ComplianceDocument) CreatedAt() time.Time {
	return d.createdAt
}

func (d *ComplianceDocument) Metadata() map[string]string {
	return copyMetadata(d.metadata)
}

// ExpiryDate returns nil when the document does not expire.
func (d *ComplianceDocument) ExpiryDate() (*time.Time, error) {
	return d.parse(fieldExpiryDate, d.expiryDate)
}

// IssueDate returns nil when no issue date was recorded.
func (d *ComplianceDocument) IssueDate() (*time.Time, error) {
	return d.parse(fieldIssueDate, d.issueDate)
}

func (d *ComplianceDocument) parse(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, &MalformedDocumentError{
			DocumentID: d.id,
			TypeCode:   d.typeCode,
			Field:      field,
			Value:      raw,
			Err:        err,
		}
	}
	return &t, nil
}

func normalizeDate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return "", err
	}
	return t.Format(biztime.DateLayout), nil
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
