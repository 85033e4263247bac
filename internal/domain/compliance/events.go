package compliance

import (
	"time"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/domain/shared/events"
)

const (
	EventTypeDocumentUploaded = "compliance.document.uploaded"
	EventTypeDocumentDeleted  = "compliance.document.deleted"
	EventTypeEntityDeleted    = "compliance.entity.deleted"
)

// DocumentEvent is raised when a document is added to or removed from an
// entity. The aggregate is the owning entity.
type DocumentEvent struct {
	events.BaseEvent
	EntityType vo.EntityType
	DocumentID string
	TypeCode   vo.DocumentTypeCode
}

func NewDocumentUploadedEvent(doc *ComplianceDocument, at time.Time) DocumentEvent {
	return newDocumentEvent(EventTypeDocumentUploaded, doc, at)
}

func NewDocumentDeletedEvent(doc *ComplianceDocument, at time.Time) DocumentEvent {
	return newDocumentEvent(EventTypeDocumentDeleted, doc, at)
}

func newDocumentEvent(eventType string, doc *ComplianceDocument, at time.Time) DocumentEvent {
	return DocumentEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: doc.EntityID(),
			EventType:   eventType,
			OccurredAt:  at,
			Version:     1,
		},
		EntityType: doc.EntityType(),
		DocumentID: doc.ID(),
		TypeCode:   doc.TypeCode(),
	}
}

type EntityDeletedEvent struct {
	events.BaseEvent
	EntityType vo.EntityType
}

func NewEntityDeletedEvent(entity *Entity, at time.Time) EntityDeletedEvent {
	return EntityDeletedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: entity.ID(),
			EventType:   EventTypeEntityDeleted,
			OccurredAt:  at,
			Version:     1,
		},
		EntityType: entity.EntityType(),
	}
}
