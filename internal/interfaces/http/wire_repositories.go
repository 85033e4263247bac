package http

import (
	"gorm.io/gorm"

	"github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/infrastructure/repository"
	shareddb "github.com/egest-app/egest/internal/shared/db"
)

// repositories holds the repository instances used by the application.
type repositories struct {
	entityRepo   compliance.EntityRepository
	documentRepo compliance.DocumentRepository
	txManager    *shareddb.TransactionManager
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		entityRepo:   repository.NewComplianceEntityRepository(db),
		documentRepo: repository.NewComplianceDocumentRepository(db),
		txManager:    shareddb.NewTransactionManager(db),
	}
}
