package usecases

import (
	"context"
	"time"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

// UpdateEntityCommand applies only the non-nil fields. An empty string clears
// an optional field.
type UpdateEntityCommand struct {
	EntityID   string
	Name       *string
	VATNumber  *string
	FiscalCode *string
	Email      *string
}

type UpdateEntityUseCase struct {
	entityRepo compliance.EntityRepository
	now        func() time.Time
	logger     logger.Interface
}

func NewUpdateEntityUseCase(entityRepo compliance.EntityRepository, logger logger.Interface) *UpdateEntityUseCase {
	return &UpdateEntityUseCase{
		entityRepo: entityRepo,
		now:        biztime.NowUTC,
		logger:     logger,
	}
}

func (uc *UpdateEntityUseCase) Execute(ctx context.Context, cmd UpdateEntityCommand) (*dto.EntityDTO, error) {
	entity, err := uc.entityRepo.GetByID(ctx, cmd.EntityID)
	if err != nil {
		uc.logger.Errorw("failed to get entity", "entity_id", cmd.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to get entity")
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("entity not found", cmd.EntityID)
	}

	now := uc.now()
	if cmd.Name != nil {
		if err := entity.Rename(*cmd.Name, now); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.VATNumber != nil || cmd.FiscalCode != nil {
		vat, fiscal := entity.VATNumber(), entity.FiscalCode()
		if cmd.VATNumber != nil {
			vat = *cmd.VATNumber
		}
		if cmd.FiscalCode != nil {
			fiscal = *cmd.FiscalCode
		}
		if err := entity.UpdateIdentifiers(vat, fiscal, now); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Email != nil {
		entity.UpdateEmail(*cmd.Email, now)
	}

	if err := uc.entityRepo.Update(ctx, entity); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update entity", "entity_id", entity.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update entity")
	}

	uc.logger.Infow("entity updated", "entity_id", entity.ID())
	return dto.ToEntityDTO(entity), nil
}
