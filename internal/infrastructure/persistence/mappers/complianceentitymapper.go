package mappers

import (
	"fmt"
	"time"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/infrastructure/persistence/models"
)

type ComplianceEntityMapper interface {
	ToModel(e *compliance.Entity) *models.ComplianceEntityModel
	ToDomain(model *models.ComplianceEntityModel) (*compliance.Entity, error)
	ToDomainList(rows []models.ComplianceEntityModel) ([]*compliance.Entity, error)
}

type ComplianceEntityMapperImpl struct{}

func NewComplianceEntityMapper() ComplianceEntityMapper {
	return &ComplianceEntityMapperImpl{}
}

func (m *ComplianceEntityMapperImpl) ToModel(e *compliance.Entity) *models.ComplianceEntityModel {
	return &models.ComplianceEntityModel{
		ID:         e.ID(),
		EntityType: e.EntityType().String(),
		Name:       e.Name(),
		VATNumber:  nullable(e.VATNumber()),
		FiscalCode: nullable(e.FiscalCode()),
		Email:      e.Email(),
		CreatedAt:  e.CreatedAt().UnixMilli(),
		UpdatedAt:  e.UpdatedAt().UnixMilli(),
	}
}

func (m *ComplianceEntityMapperImpl) ToDomain(model *models.ComplianceEntityModel) (*compliance.Entity, error) {
	if model == nil {
		return nil, nil
	}
	entityType, err := vo.ParseEntityType(model.EntityType)
	if err != nil {
		return nil, fmt.Errorf("entity %s: %w", model.ID, err)
	}
	return compliance.ReconstructEntity(
		model.ID,
		entityType,
		model.Name,
		deref(model.VATNumber),
		deref(model.FiscalCode),
		model.Email,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *ComplianceEntityMapperImpl) ToDomainList(rows []models.ComplianceEntityModel) ([]*compliance.Entity, error) {
	out := make([]*compliance.Entity, 0, len(rows))
	for i := range rows {
		e, err := m.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// nullable keeps empty optional identifiers out of unique indexes.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
