package models

import (
	"gorm.io/datatypes"

	"github.com/egest-app/egest/internal/shared/constants"
)

// ComplianceDocumentModel stores dates as the raw strings received so that a
// malformed legacy value reaches the evaluator instead of failing the load.
type ComplianceDocumentModel struct {
	ID            string         `gorm:"primaryKey;size:36"`
	EntityID      string         `gorm:"size:36;not null;index:idx_documents_entity,priority:2"`
	EntityType    string         `gorm:"size:20;not null;index:idx_documents_entity,priority:1"`
	TypeCode      string         `gorm:"size:40;not null;index"`
	IssueDate     string         `gorm:"size:32"`
	ExpiryDate    string         `gorm:"size:32;index"`
	ValidityState string         `gorm:"size:20;not null;default:unknown"`
	FileName      string         `gorm:"size:255"`
	Notes         string         `gorm:"type:text"`
	Metadata      datatypes.JSON `gorm:"type:json"`
	CreatedAt     int64          `gorm:"autoCreateTime:milli;not null"`
}

func (ComplianceDocumentModel) TableName() string {
	return constants.TableComplianceDocuments
}
