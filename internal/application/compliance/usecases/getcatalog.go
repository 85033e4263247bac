package usecases

import (
	"context"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/domain/compliance"
)

type GetCatalogUseCase struct {
	evaluator *compliance.Evaluator
}

func NewGetCatalogUseCase(evaluator *compliance.Evaluator) *GetCatalogUseCase {
	return &GetCatalogUseCase{evaluator: evaluator}
}

func (uc *GetCatalogUseCase) Execute(_ context.Context) *dto.CatalogDTO {
	return dto.ToCatalogDTO(uc.evaluator.Catalog(), uc.evaluator.ExpiringWindowDays())
}
