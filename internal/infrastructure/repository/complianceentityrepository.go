package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/infrastructure/persistence/mappers"
	"github.com/egest-app/egest/internal/infrastructure/persistence/models"
	"github.com/egest-app/egest/internal/shared/db"
	apperrors "github.com/egest-app/egest/internal/shared/errors"
)

// entitySortColumns whitelists ORDER BY columns.
var entitySortColumns = map[string]string{
	"name":        "name",
	"entity_type": "entity_type",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

type ComplianceEntityRepository struct {
	db     *gorm.DB
	mapper mappers.ComplianceEntityMapper
}

func NewComplianceEntityRepository(gdb *gorm.DB) *ComplianceEntityRepository {
	return &ComplianceEntityRepository{
		db:     gdb,
		mapper: mappers.NewComplianceEntityMapper(),
	}
}

func (r *ComplianceEntityRepository) Create(ctx context.Context, e *compliance.Entity) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(e)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("an entity with this VAT number already exists")
		}
		return fmt.Errorf("failed to create entity: %w", err)
	}
	return nil
}

func (r *ComplianceEntityRepository) Update(ctx context.Context, e *compliance.Entity) error {
	model := r.mapper.ToModel(e)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ComplianceEntityModel{}).
		Where("id = ?", model.ID).
		Select("name", "vat_number", "fiscal_code", "email", "updated_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("an entity with this VAT number already exists")
		}
		return fmt.Errorf("failed to update entity: %w", result.Error)
	}
	return nil
}

func (r *ComplianceEntityRepository) Delete(ctx context.Context, id string) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.ComplianceEntityModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}
	return nil
}

func (r *ComplianceEntityRepository) GetByID(ctx context.Context, id string) (*compliance.Entity, error) {
	var model models.ComplianceEntityModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// List returns one page plus the total count. PageSize <= 0 returns every match.
func (r *ComplianceEntityRepository) List(ctx context.Context, filter compliance.EntityFilter) ([]*compliance.Entity, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ComplianceEntityModel{})
	if filter.EntityType != nil {
		query = query.Where("entity_type = ?", filter.EntityType.String())
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR vat_number LIKE ? OR fiscal_code LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count entities: %w", err)
	}

	var rows []models.ComplianceEntityModel
	err := query.
		Scopes(
			db.OrderBy(filter.SortBy, filter.SortOrder, entitySortColumns, "name ASC"),
			db.Paginate(filter.Page, filter.PageSize),
		).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entities: %w", err)
	}

	entities, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
