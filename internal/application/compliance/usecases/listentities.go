package usecases

import (
	"context"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/shared/constants"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
)

type ListEntitiesQuery struct {
	EntityType string
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListEntitiesResult struct {
	Entities []*dto.EntityDTO
	Total    int64
	Page     int
	PageSize int
}

type ListEntitiesUseCase struct {
	entityRepo compliance.EntityRepository
	logger     logger.Interface
}

func NewListEntitiesUseCase(entityRepo compliance.EntityRepository, logger logger.Interface) *ListEntitiesUseCase {
	return &ListEntitiesUseCase{entityRepo: entityRepo, logger: logger}
}

func (uc *ListEntitiesUseCase) Execute(ctx context.Context, query ListEntitiesQuery) (*ListEntitiesResult, error) {
	filter := compliance.EntityFilter{
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	if query.EntityType != "" {
		et, err := vo.ParseEntityType(query.EntityType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.EntityType = &et
	}

	entities, total, err := uc.entityRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list entities", "error", err)
		return nil, errors.NewInternalError("failed to list entities")
	}

	return &ListEntitiesResult{
		Entities: dto.ToEntityDTOList(entities),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
