package usecases

import (
	"context"
	"time"

	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/domain/shared/events"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

type DeleteEntityCommand struct {
	EntityID string
}

type DeleteEntityResult struct {
	DocumentsRemoved int64
}

// DeleteEntityUseCase removes an entity and all of its documents in one transaction.
type DeleteEntityUseCase struct {
	entityRepo compliance.EntityRepository
	docRepo    compliance.DocumentRepository
	tx         Transactor
	publisher  events.EventPublisher
	now        func() time.Time
	logger     logger.Interface
}

func NewDeleteEntityUseCase(
	entityRepo compliance.EntityRepository,
	docRepo compliance.DocumentRepository,
	tx Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *DeleteEntityUseCase {
	return &DeleteEntityUseCase{
		entityRepo: entityRepo,
		docRepo:    docRepo,
		tx:         tx,
		publisher:  publisher,
		now:        biztime.NowUTC,
		logger:     logger,
	}
}

func (uc *DeleteEntityUseCase) Execute(ctx context.Context, cmd DeleteEntityCommand) (*DeleteEntityResult, error) {
	entity, err := uc.entityRepo.GetByID(ctx, cmd.EntityID)
	if err != nil {
		uc.logger.Errorw("failed to get entity", "entity_id", cmd.EntityID, "error", err)
		return nil, errors.NewInternalError("failed to get entity")
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("entity not found", cmd.EntityID)
	}

	var removed int64
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.docRepo.DeleteByEntity(txCtx, entity.EntityType(), entity.ID())
		if err != nil {
			return err
		}
		removed = n
		return uc.entityRepo.Delete(txCtx, entity.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete entity", "entity_id", entity.ID(), "error", err)
		return nil, errors.NewInternalError("failed to delete entity")
	}

	if err := uc.publisher.Publish(compliance.NewEntityDeletedEvent(entity, uc.now())); err != nil {
		uc.logger.Warnw("failed to publish entity deleted event", "entity_id", entity.ID(), "error", err)
	}

	uc.logger.Infow("entity deleted", "entity_id", entity.ID(), "documents_removed", removed)
	return &DeleteEntityResult{DocumentsRemoved: removed}, nil
}
