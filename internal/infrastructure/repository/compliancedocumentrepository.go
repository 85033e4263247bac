package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/infrastructure/persistence/mappers"
	"github.com/egest-app/egest/internal/infrastructure/persistence/models"
	"github.com/egest-app/egest/internal/shared/db"
)

// ComplianceDocumentRepository is the gorm implementation of compliance.DocumentRepository.
type ComplianceDocumentRepository struct {
	db     *gorm.DB
	mapper mappers.ComplianceDocumentMapper
}

func NewComplianceDocumentRepository(gdb *gorm.DB) *ComplianceDocumentRepository {
	return &ComplianceDocumentRepository{
		db:     gdb,
		mapper: mappers.NewComplianceDocumentMapper(),
	}
}

func (r *ComplianceDocumentRepository) Create(ctx context.Context, doc *compliance.ComplianceDocument) error {
	model, err := r.mapper.ToModel(doc)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create compliance document: %w", err)
	}
	return nil
}

// Delete is a no-op for unknown IDs.
func (r *ComplianceDocumentRepository) Delete(ctx context.Context, id string) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.ComplianceDocumentModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete compliance document: %w", err)
	}
	return nil
}

func (r *ComplianceDocumentRepository) DeleteByEntity(ctx context.Context, entityType vo.EntityType, entityID string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("entity_type = ? AND entity_id = ?", entityType.String(), entityID).
		Delete(&models.ComplianceDocumentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete documents of entity %s: %w", entityID, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ComplianceDocumentRepository) GetByID(ctx context.Context, id string) (*compliance.ComplianceDocument, error) {
	var model models.ComplianceDocumentModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get compliance document: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ComplianceDocumentRepository) ListByEntity(ctx context.Context, entityType vo.EntityType, entityID string) ([]*compliance.ComplianceDocument, error) {
	var rows []models.ComplianceDocumentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("entity_type = ? AND entity_id = ?", entityType.String(), entityID).
		Order("type_code ASC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents of entity %s: %w", entityID, err)
	}
	return r.mapper.ToDomainList(rows)
}

func (r *ComplianceDocumentRepository) ListByEntityType(ctx context.Context, entityType vo.EntityType) (map[string][]*compliance.ComplianceDocument, error) {
	var rows []models.ComplianceDocumentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("entity_type = ?", entityType.String()).
		Order("entity_id ASC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", entityType, err)
	}

	docs, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*compliance.ComplianceDocument)
	for _, d := range docs {
		grouped[d.EntityID()] = append(grouped[d.EntityID()], d)
	}
	return grouped, nil
}
