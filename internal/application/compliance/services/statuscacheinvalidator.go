package services

import (
	"context"
	"fmt"
	"time"

	"github.com/egest-app/egest/internal/application/compliance/usecases"
	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/domain/shared/events"
	"github.com/egest-app/egest/internal/shared/logger"
)

const invalidateTimeout = 5 * time.Second

// StatusCacheInvalidator drops the cached compliance status of an entity
// whenever one of its documents changes or the entity is deleted.
type StatusCacheInvalidator struct {
	cache  usecases.StatusCache
	logger logger.Interface
}

func NewStatusCacheInvalidator(cache usecases.StatusCache, logger logger.Interface) *StatusCacheInvalidator {
	return &StatusCacheInvalidator{cache: cache, logger: logger}
}

// Register subscribes the invalidator to every event that changes an entity's status.
func (h *StatusCacheInvalidator) Register(sub events.EventSubscriber) error {
	for _, eventType := range []string{
		compliance.EventTypeDocumentUploaded,
		compliance.EventTypeDocumentDeleted,
		compliance.EventTypeEntityDeleted,
	} {
		if err := sub.Subscribe(eventType, h); err != nil {
			return fmt.Errorf("subscribe %s: %w", eventType, err)
		}
	}
	return nil
}

func (h *StatusCacheInvalidator) Handle(event events.DomainEvent) error {
	var entityType vo.EntityType
	switch e := event.(type) {
	case compliance.DocumentEvent:
		entityType = e.EntityType
	case compliance.EntityDeletedEvent:
		entityType = e.EntityType
	default:
		h.logger.Debugw("ignoring event", "event_type", event.GetEventType())
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()

	if err := h.cache.Delete(ctx, entityType, event.GetAggregateID()); err != nil {
		h.logger.Warnw("failed to invalidate cached compliance status",
			"entity_id", event.GetAggregateID(),
			"event_type", event.GetEventType(),
			"error", err,
		)
		return err
	}

	h.logger.Debugw("cached compliance status invalidated",
		"entity_id", event.GetAggregateID(),
		"event_type", event.GetEventType(),
	)
	return nil
}
