package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

type CreateEntityCommand struct {
	EntityType string
	Name       string
	VATNumber  string
	FiscalCode string
	Email      string
}

type CreateEntityUseCase struct {
	entityRepo compliance.EntityRepository
	now        func() time.Time
	logger     logger.Interface
}

func NewCreateEntityUseCase(entityRepo compliance.EntityRepository, logger logger.Interface) *CreateEntityUseCase {
	return &CreateEntityUseCase{
		entityRepo: entityRepo,
		now:        biztime.NowUTC,
		logger:     logger,
	}
}

func (uc *CreateEntityUseCase) Execute(ctx context.Context, cmd CreateEntityCommand) (*dto.EntityDTO, error) {
	uc.logger.Infow("executing create entity use case", "entity_type", cmd.EntityType, "name", cmd.Name)

	et, err := vo.ParseEntityType(cmd.EntityType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity, err := compliance.NewEntity(uuid.NewString(), et, cmd.Name, cmd.VATNumber, cmd.FiscalCode, cmd.Email, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.entityRepo.Create(ctx, entity); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save entity", "error", err)
		return nil, errors.NewInternalError("failed to save entity")
	}

	uc.logger.Infow("entity created", "entity_id", entity.ID(), "entity_type", et)
	return dto.ToEntityDTO(entity), nil
}
