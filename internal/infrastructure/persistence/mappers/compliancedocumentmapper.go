package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/infrastructure/persistence/models"
)

// ComplianceDocumentMapper converts between documents and their rows.
type ComplianceDocumentMapper interface {
	ToModel(doc *compliance.ComplianceDocument) (*models.ComplianceDocumentModel, error)
	// ToDomain does not validate dates; see compliance.ReconstructComplianceDocument.
	ToDomain(model *models.ComplianceDocumentModel) (*compliance.ComplianceDocument, error)
	ToDomainList(rows []models.ComplianceDocumentModel) ([]*compliance.ComplianceDocument, error)
}

type ComplianceDocumentMapperImpl struct{}

func NewComplianceDocumentMapper() ComplianceDocumentMapper {
	return &ComplianceDocumentMapperImpl{}
}

func (m *ComplianceDocumentMapperImpl) ToModel(doc *compliance.ComplianceDocument) (*models.ComplianceDocumentModel, error) {
	model := &models.ComplianceDocumentModel{
		ID:            doc.ID(),
		EntityID:      doc.EntityID(),
		EntityType:    doc.EntityType().String(),
		TypeCode:      doc.TypeCode().String(),
		IssueDate:     doc.RawIssueDate(),
		ExpiryDate:    doc.RawExpiryDate(),
		ValidityState: doc.ValidityState().String(),
		FileName:      doc.FileName(),
		Notes:         doc.Notes(),
		CreatedAt:     doc.CreatedAt().UnixMilli(),
	}

	if meta := doc.Metadata(); len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document metadata: %w", err)
		}
		model.Metadata = datatypes.JSON(raw)
	}
	return model, nil
}

func (m *ComplianceDocumentMapperImpl) ToDomain(model *models.ComplianceDocumentModel) (*compliance.ComplianceDocument, error) {
	if model == nil {
		return nil, nil
	}

	entityType, err := vo.ParseEntityType(model.EntityType)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", model.ID, err)
	}

	var meta map[string]string
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &meta); err != nil {
			return nil, fmt.Errorf("document %s: failed to unmarshal metadata: %w", model.ID, err)
		}
	}

	// Unknown type codes are kept as-is: the evaluator ignores codes outside
	// the catalog, and dropping the row here would hide it from listings.
	return compliance.ReconstructComplianceDocument(
		model.ID,
		model.EntityID,
		entityType,
		vo.DocumentTypeCode(model.TypeCode),
		model.IssueDate,
		model.ExpiryDate,
		vo.ParseValidityState(model.ValidityState),
		model.FileName,
		model.Notes,
		meta,
		time.UnixMilli(model.CreatedAt).UTC(),
	), nil
}

func (m *ComplianceDocumentMapperImpl) ToDomainList(rows []models.ComplianceDocumentModel) ([]*compliance.ComplianceDocument, error) {
	out := make([]*compliance.ComplianceDocument, 0, len(rows))
	for i := range rows {
		doc, err := m.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}
