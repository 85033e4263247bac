package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/egest-app/egest/internal/infrastructure/persistence/models"
	"github.com/egest-app/egest/internal/shared/logger"
)

// Models lists every persisted model.
func Models() []interface{} {
	return []interface{}{
		&models.ComplianceEntityModel{},
		&models.ComplianceDocumentModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the models. Used for sqlite.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	list := Models()
	if err := db.AutoMigrate(list...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	s.logger.Infow("auto-migration completed", "models_count", len(list))
	return nil
}
