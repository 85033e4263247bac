package compliance

import (
	"context"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

// EntityRepository returns (nil, nil) from GetByID when the entity does not exist.
type EntityRepository interface {
	Create(ctx context.Context, entity *Entity) error
	Update(ctx context.Context, entity *Entity) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Entity, error)
	List(ctx context.Context, filter EntityFilter) ([]*Entity, int64, error)
}

type EntityFilter struct {
	EntityType *vo.EntityType
	// Search matches name, VAT number or fiscal code by substring.
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// DocumentRepository is the read/write boundary to stored documents.
// GetByID returns (nil, nil) when the document does not exist.
type DocumentRepository interface {
	Create(ctx context.Context, doc *ComplianceDocument) error
	Delete(ctx context.Context, id string) error
	DeleteByEntity(ctx context.Context, entityType vo.EntityType, entityID string) (int64, error)
	GetByID(ctx context.Context, id string) (*ComplianceDocument, error)
	ListByEntity(ctx context.Context, entityType vo.EntityType, entityID string) ([]*ComplianceDocument, error)
	// ListByEntityType groups every document of entityType by entity ID.
	ListByEntityType(ctx context.Context, entityType vo.EntityType) (map[string][]*ComplianceDocument, error)
}
