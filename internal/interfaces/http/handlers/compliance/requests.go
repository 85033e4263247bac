package compliance

import (
	"github.com/egest-app/egest/internal/application/compliance/usecases"
)

type CreateEntityRequest struct {
	EntityType string `json:"entity_type" binding:"required,entity_type"`
	Name       string `json:"name" binding:"required,max=200"`
	VATNumber  string `json:"vat_number" binding:"omitempty,len=11,numeric"`
	FiscalCode string `json:"fiscal_code" binding:"omitempty,max=16"`
	Email      string `json:"email" binding:"omitempty,email"`
}

func (r *CreateEntityRequest) ToCommand() usecases.CreateEntityCommand {
	return usecases.CreateEntityCommand{
		EntityType: r.EntityType,
		Name:       r.Name,
		VATNumber:  r.VATNumber,
		FiscalCode: r.FiscalCode,
		Email:      r.Email,
	}
}

// UpdateEntityRequest is a partial update; absent fields are left unchanged.
type UpdateEntityRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=200"`
	VATNumber  *string `json:"vat_number" binding:"omitempty,max=11"`
	FiscalCode *string `json:"fiscal_code" binding:"omitempty,max=16"`
	Email      *string `json:"email" binding:"omitempty,max=255"`
}

func (r *UpdateEntityRequest) ToCommand(entityID string) usecases.UpdateEntityCommand {
	return usecases.UpdateEntityCommand{
		EntityID:   entityID,
		Name:       r.Name,
		VATNumber:  r.VATNumber,
		FiscalCode: r.FiscalCode,
		Email:      r.Email,
	}
}

type ListEntitiesRequest struct {
	EntityType string `form:"entity_type" binding:"omitempty,entity_type"`
	Search     string `form:"search" binding:"omitempty,max=100"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=name entity_type created_at updated_at"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// UploadDocumentRequest registers a document against an entity. Dates are
// YYYY-MM-DD or RFC3339; an empty expiry_date means the document never expires.
type UploadDocumentRequest struct {
	TypeCode   string            `json:"type_code" binding:"required,document_type"`
	IssueDate  string            `json:"issue_date" binding:"omitempty,max=32"`
	ExpiryDate string            `json:"expiry_date" binding:"omitempty,max=32"`
	FileName   string            `json:"file_name" binding:"omitempty,max=255"`
	Notes      string            `json:"notes" binding:"omitempty,max=2000"`
	Metadata   map[string]string `json:"metadata"`
}

func (r *UploadDocumentRequest) ToCommand(entityID string) usecases.UploadDocumentCommand {
	return usecases.UploadDocumentCommand{
		EntityID:   entityID,
		TypeCode:   r.TypeCode,
		IssueDate:  r.IssueDate,
		ExpiryDate: r.ExpiryDate,
		FileName:   r.FileName,
		Notes:      r.Notes,
		Metadata:   r.Metadata,
	}
}

type OverviewRequest struct {
	EntityType string `form:"entity_type" binding:"omitempty,entity_type"`
}
