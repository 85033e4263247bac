package models

import "github.com/egest-app/egest/internal/shared/constants"

type ComplianceEntityModel struct {
	ID         string  `gorm:"primaryKey;size:36"`
	EntityType string  `gorm:"size:20;not null;index"`
	Name       string  `gorm:"size:200;not null;index"`
	VATNumber  *string `gorm:"size:11;uniqueIndex"`
	FiscalCode *string `gorm:"size:16;index"`
	Email      string  `gorm:"size:255"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ComplianceEntityModel) TableName() string {
	return constants.TableComplianceEntities
}
