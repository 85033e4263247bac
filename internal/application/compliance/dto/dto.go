package dto

import (
	"time"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/shared/biztime"
)

type SlotDTO struct {
	TypeCode       string  `json:"type_code"`
	Label          string  `json:"label"`
	Classification string  `json:"classification"`
	DocumentID     string  `json:"document_id,omitempty"`
	ExpiryDate     *string `json:"expiry_date"`
	DaysRemaining  *int    `json:"days_remaining"`
}

type ComplianceStatusDTO struct {
	EntityID             string    `json:"entity_id"`
	EntityName           string    `json:"entity_name"`
	EntityType           string    `json:"entity_type"`
	ValidCount           int       `json:"valid_count"`
	ExpiringCount        int       `json:"expiring_count"`
	ExpiredCount         int       `json:"expired_count"`
	MissingTypeCodes     []string  `json:"missing_type_codes"`
	Payable              bool      `json:"payable"`
	CompliancePercentage int       `json:"compliance_percentage"`
	Slots                []SlotDTO `json:"slots"`
	EvaluatedAt          time.Time `json:"evaluated_at"`
}

type AggregateStatsDTO struct {
	Total         int `json:"total"`
	PayableCount  int `json:"payable_count"`
	BlockedCount  int `json:"blocked_count"`
	ExpiringCount int `json:"expiring_count"`
	CriticalCount int `json:"critical_count"`
}

type EntityFailureDTO struct {
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	EntityType string `json:"entity_type"`
	Error      string `json:"error"`
}

type ComplianceOverviewDTO struct {
	Statuses    []*ComplianceStatusDTO `json:"statuses"`
	Failures    []EntityFailureDTO     `json:"failures"`
	Stats       AggregateStatsDTO      `json:"stats"`
	EvaluatedAt time.Time              `json:"evaluated_at"`
}

type DocumentDTO struct {
	ID            string            `json:"id"`
	EntityID      string            `json:"entity_id"`
	EntityType    string            `json:"entity_type"`
	TypeCode      string            `json:"type_code"`
	Label         string            `json:"label"`
	IssueDate     string            `json:"issue_date,omitempty"`
	ExpiryDate    string            `json:"expiry_date,omitempty"`
	ValidityState string            `json:"validity_state"`
	FileName      string            `json:"file_name,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type EntityDTO struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	Name       string    `json:"name"`
	VATNumber  string    `json:"vat_number,omitempty"`
	FiscalCode string    `json:"fiscal_code,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DocumentTypeDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type CatalogEntryDTO struct {
	EntityType   string            `json:"entity_type"`
	Requirements []DocumentTypeDTO `json:"requirements"`
}

type CatalogDTO struct {
	EntityTypes        []CatalogEntryDTO `json:"entity_types"`
	ExpiringWindowDays int               `json:"expiring_window_days"`
}

func ToSlotDTO(s compliance.SlotResult) SlotDTO {
	out := SlotDTO{
		TypeCode:       s.TypeCode.String(),
		Label:          s.TypeCode.Label(),
		Classification: s.Classification.String(),
		DocumentID:     s.DocumentID,
	}
	if s.ExpiryDate != nil {
		// Expiry dates are civil dates at UTC midnight.
		date := s.ExpiryDate.UTC().Format(biztime.DateLayout)
		days := s.DaysRemaining
		out.ExpiryDate = &date
		out.DaysRemaining = &days
	}
	return out
}

func ToComplianceStatusDTO(s *compliance.ComplianceStatus) *ComplianceStatusDTO {
	if s == nil {
		return nil
	}

	slots := make([]SlotDTO, 0, len(s.Slots))
	for _, slot := range s.Slots {
		slots = append(slots, ToSlotDTO(slot))
	}

	return &ComplianceStatusDTO{
		EntityID:             s.EntityID,
		EntityName:           s.EntityName,
		EntityType:           s.EntityType.String(),
		ValidCount:           s.ValidCount,
		ExpiringCount:        s.ExpiringCount,
		ExpiredCount:         s.ExpiredCount,
		MissingTypeCodes:     codeStrings(s.MissingTypeCodes),
		Payable:              s.Payable,
		CompliancePercentage: s.CompliancePercentage,
		Slots:                slots,
		EvaluatedAt:          s.EvaluatedAt,
	}
}

func ToAggregateStatsDTO(s compliance.AggregateStats) AggregateStatsDTO {
	return AggregateStatsDTO{
		Total:         s.Total,
		PayableCount:  s.PayableCount,
		BlockedCount:  s.BlockedCount,
		ExpiringCount: s.ExpiringCount,
		CriticalCount: s.CriticalCount,
	}
}

func ToEntityFailureDTO(f compliance.EntityFailure) EntityFailureDTO {
	out := EntityFailureDTO{
		EntityID:   f.EntityID,
		EntityName: f.EntityName,
		EntityType: f.EntityType.String(),
	}
	if f.Err != nil {
		out.Error = f.Err.Error()
	}
	return out
}

// ToComplianceOverviewDTO keeps the order of r.Statuses and r.Failures.
func ToComplianceOverviewDTO(r *compliance.BatchResult, evaluatedAt time.Time) *ComplianceOverviewDTO {
	out := &ComplianceOverviewDTO{
		Statuses:    make([]*ComplianceStatusDTO, 0, len(r.Statuses)),
		Failures:    make([]EntityFailureDTO, 0, len(r.Failures)),
		Stats:       ToAggregateStatsDTO(r.Stats),
		EvaluatedAt: evaluatedAt,
	}
	for _, s := range r.Statuses {
		out.Statuses = append(out.Statuses, ToComplianceStatusDTO(s))
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, ToEntityFailureDTO(f))
	}
	return out
}

func ToDocumentDTO(d *compliance.ComplianceDocument) *DocumentDTO {
	if d == nil {
		return nil
	}
	return &DocumentDTO{
		ID:            d.ID(),
		EntityID:      d.EntityID(),
		EntityType:    d.EntityType().String(),
		TypeCode:      d.TypeCode().String(),
		Label:         d.TypeCode().Label(),
		IssueDate:     d.RawIssueDate(),
		ExpiryDate:    d.RawExpiryDate(),
		ValidityState: d.ValidityState().String(),
		FileName:      d.FileName(),
		Notes:         d.Notes(),
		Metadata:      d.Metadata(),
		CreatedAt:     d.CreatedAt(),
	}
}

func ToDocumentDTOList(docs []*compliance.ComplianceDocument) []*DocumentDTO {
	out := make([]*DocumentDTO, 0, len(docs))
	for _, d := range docs {
		out = append(out, ToDocumentDTO(d))
	}
	return out
}

func ToEntityDTO(e *compliance.Entity) *EntityDTO {
	if e == nil {
		return nil
	}
	return &EntityDTO{
		ID:         e.ID(),
		EntityType: e.EntityType().String(),
		Name:       e.Name(),
		VATNumber:  e.VATNumber(),
		FiscalCode: e.FiscalCode(),
		Email:      e.Email(),
		CreatedAt:  e.CreatedAt(),
		UpdatedAt:  e.UpdatedAt(),
	}
}

func ToEntityDTOList(entities []*compliance.Entity) []*EntityDTO {
	out := make([]*EntityDTO, 0, len(entities))
	for _, e := range entities {
		out = append(out, ToEntityDTO(e))
	}
	return out
}

func ToCatalogDTO(c *compliance.RequirementCatalog, windowDays int) *CatalogDTO {
	out := &CatalogDTO{ExpiringWindowDays: windowDays}
	for _, et := range c.EntityTypes() {
		codes, err := c.Requirements(et)
		if err != nil {
			continue
		}
		entry := CatalogEntryDTO{
			EntityType:   et.String(),
			Requirements: make([]DocumentTypeDTO, 0, len(codes)),
		}
		for _, code := range codes {
			entry.Requirements = append(entry.Requirements, DocumentTypeDTO{Code: code.String(), Label: code.Label()})
		}
		out.EntityTypes = append(out.EntityTypes, entry)
	}
	return out
}

func codeStrings(codes []vo.DocumentTypeCode) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, c.String())
	}
	return out
}
