package usecases

import (
	"context"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

type GetEntityQuery struct {
	EntityID string
}

type GetEntityUseCase struct {
	entityRepo compliance.EntityRepository
	logger     logger.Interface
}

func NewGetEntityUseCase(entityRepo compliance.EntityRepository, logger logger.Interface) *GetEntityUseCase {
	return &GetEntityUseCase{entityRepo: entityRepo, logger: logger}
}

func (uc *GetEntityUseCase) Execute(ctx context.Context, query GetEntityQuery) (*dto.EntityDTO, error) {
	entity, err := uc.entityRepo.GetByID(ctx, query.EntityID)
	if err != nil {
		uc.logger.Errorw("failed to get entity", "entity_id", query.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to get entity")
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("entity not found", query.EntityID)
	}
	return dto.ToEntityDTO(entity), nil
}
