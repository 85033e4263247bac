package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/domain/shared/events"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

type UploadDocumentCommand struct {
	EntityID   string
	TypeCode   string
	IssueDate  string
	ExpiryDate string
	FileName   string
	Notes      string
	Metadata   map[string]string
}

// UploadDocumentUseCase records a document for an entity. Only codes the
// catalog requires for the entity's type are accepted.
type UploadDocumentUseCase struct {
	entityRepo compliance.EntityRepository
	docRepo    compliance.DocumentRepository
	catalog    *compliance.RequirementCatalog
	publisher  events.EventPublisher
	now        func() time.Time
	logger     logger.Interface
}

func NewUploadDocumentUseCase(
	entityRepo compliance.EntityRepository,
	docRepo compliance.DocumentRepository,
	catalog *compliance.RequirementCatalog,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{
		entityRepo: entityRepo,
		docRepo:    docRepo,
		catalog:    catalog,
		publisher:  publisher,
		now:        biztime.NowUTC,
		logger:     logger,
	}
}

func (uc *UploadDocumentUseCase) Execute(ctx context.Context, cmd UploadDocumentCommand) (*dto.DocumentDTO, error) {
	uc.logger.Infow("executing upload document use case", "entity_id", cmd.EntityID, "type_code", cmd.TypeCode)

	code, err := vo.ParseDocumentTypeCode(cmd.TypeCode)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity, err := uc.entityRepo.GetByID(ctx, cmd.EntityID)
	if err != nil {
		uc.logger.Errorw("failed to get entity", "entity_id", cmd.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to get entity")
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("entity not found", cmd.EntityID)
	}

	if !uc.catalog.Requires(entity.EntityType(), code) {
		return nil, errors.NewValidationError(
			"document type is not required for this entity type",
			code.String(), entity.EntityType().String(),
		)
	}

	now := uc.now()
	doc, err := compliance.NewComplianceDocument(compliance.NewDocumentParams{
		ID:         uuid.NewString(),
		EntityID:   entity.ID(),
		EntityType: entity.EntityType(),
		TypeCode:   code,
		IssueDate:  cmd.IssueDate,
		ExpiryDate: cmd.ExpiryDate,
		FileName:   cmd.FileName,
		Notes:      cmd.Notes,
		Metadata:   cmd.Metadata,
	}, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.docRepo.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to save document", "entity_id", entity.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save document")
	}

	if err := uc.publisher.Publish(compliance.NewDocumentUploadedEvent(doc, now)); err != nil {
		uc.logger.Warnw("failed to publish document uploaded event", "document_id", doc.ID(), "error", err)
	}

	uc.logger.Infow("document uploaded", "document_id", doc.ID(), "entity_id", entity.ID(), "type_code", code)
	return dto.ToDocumentDTO(doc), nil
}
