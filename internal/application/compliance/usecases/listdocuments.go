package usecases

import (
	"context"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

type ListDocumentsQuery struct {
	EntityID string
}

type ListDocumentsUseCase struct {
	entityRepo compliance.EntityRepository
	docRepo    compliance.DocumentRepository
	logger     logger.Interface
}

func NewListDocumentsUseCase(
	entityRepo compliance.EntityRepository,
	docRepo compliance.DocumentRepository,
	logger logger.Interface,
) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{
		entityRepo: entityRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, query ListDocumentsQuery) ([]*dto.DocumentDTO, error) {
	entity, err := uc.entityRepo.GetByID(ctx, query.EntityID)
	if err != nil {
		uc.logger.Errorw("failed to get entity", "entity_id", query.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to get entity")
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("entity not found", query.EntityID)
	}

	docs, err := uc.docRepo.ListByEntity(ctx, entity.EntityType(), entity.ID())
	if err != nil {
		uc.logger.Errorw("failed to list documents", "entity_id", entity.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list documents")
	}
	return dto.ToDocumentDTOList(docs), nil
}
