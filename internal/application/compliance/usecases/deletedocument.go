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

type DeleteDocumentCommand struct {
	DocumentID string
}

type DeleteDocumentUseCase struct {
	docRepo   compliance.DocumentRepository
	publisher events.EventPublisher
	now       func() time.Time
	logger    logger.Interface
}

func NewDeleteDocumentUseCase(
	docRepo compliance.DocumentRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *DeleteDocumentUseCase {
	return &DeleteDocumentUseCase{
		docRepo:   docRepo,
		publisher: publisher,
		now:       biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *DeleteDocumentUseCase) Execute(ctx context.Context, cmd DeleteDocumentCommand) error {
	doc, err := uc.docRepo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		uc.logger.Errorw("failed to get document", "document_id", cmd.DocumentID, "error", err)
		return errors.NewInternalError("failed to get document")
	}
	if doc == nil {
		return errors.NewNotFoundError("document not found", cmd.DocumentID)
	}

	if err := uc.docRepo.Delete(ctx, doc.ID()); err != nil {
		uc.logger.Errorw("failed to delete document", "document_id", doc.ID(), "error", err)
		return errors.NewInternalError("failed to delete document")
	}

	if err := uc.publisher.Publish(compliance.NewDocumentDeletedEvent(doc, uc.now())); err != nil {
		uc.logger.Warnw("failed to publish document deleted event", "document_id", doc.ID(), "error", err)
	}

	uc.logger.Infow("document deleted", "document_id", doc.ID(), "entity_id", doc.EntityID())
	return nil
}
