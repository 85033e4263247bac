package compliance

import (
	"context"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/application/compliance/usecases"
)

type evaluateEntityUseCase interface {
	Execute(ctx context.Context, query usecases.EvaluateEntityQuery) (*dto.ComplianceStatusDTO, error)
}

type getOverviewUseCase interface {
	Execute(ctx context.Context, query usecases.GetComplianceOverviewQuery) (*dto.ComplianceOverviewDTO, error)
}

type getCatalogUseCase interface {
	Execute(ctx context.Context) *dto.CatalogDTO
}

type createEntityUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateEntityCommand) (*dto.EntityDTO, error)
}

type getEntityUseCase interface {
	Execute(ctx context.Context, query usecases.GetEntityQuery) (*dto.EntityDTO, error)
}

type listEntitiesUseCase interface {
	Execute(ctx context.Context, query usecases.ListEntitiesQuery) (*usecases.ListEntitiesResult, error)
}

type updateEntityUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateEntityCommand) (*dto.EntityDTO, error)
}

type deleteEntityUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteEntityCommand) (*usecases.DeleteEntityResult, error)
}

type uploadDocumentUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadDocumentCommand) (*dto.DocumentDTO, error)
}

type listDocumentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListDocumentsQuery) ([]*dto.DocumentDTO, error)
}

type deleteDocumentUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteDocumentCommand) error
}
