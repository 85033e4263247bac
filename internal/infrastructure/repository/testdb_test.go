package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/egest-app/egest/internal/infrastructure/persistence/models"
	"github.com/egest-app/egest/internal/shared/biztime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	biztime.MustInit("Europe/Rome")

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Every pooled connection to :memory: would be a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&models.ComplianceEntityModel{}, &models.ComplianceDocumentModel{}))
	return gdb
}
