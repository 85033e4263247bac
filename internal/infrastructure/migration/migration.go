package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/egest-app/egest/internal/shared/logger"
)

const (
	ToolGoose         = "goose"
	ToolGolangMigrate = "golang-migrate"
)

// Manager runs one migration strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for a database driver. sqlite always uses
// gorm AutoMigrate since the scripts are MySQL DDL. tool selects between
// goose (default) and golang-migrate for MySQL.
func NewManager(driver, tool string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch driver {
	case "sqlite":
		strategy = NewGormAutoMigrateStrategy(log)
	case "mysql":
		switch tool {
		case "", ToolGoose:
			strategy = NewGooseStrategy(log)
		case ToolGolangMigrate:
			strategy = NewGolangMigrateStrategy(log)
		default:
			return nil, fmt.Errorf("unknown migration tool %q", tool)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

// Down rolls back steps migrations.
func (m *Manager) Down(db *gorm.DB, steps int) error {
	r, ok := m.strategy.(Reverter)
	if !ok {
		return fmt.Errorf("strategy %s does not support rollback", m.strategy.GetName())
	}
	if steps < 1 {
		steps = 1
	}
	return r.MigrateDown(db, steps)
}

// Version reports the applied schema version.
func (m *Manager) Version(db *gorm.DB) (int64, bool, error) {
	v, ok := m.strategy.(Versioner)
	if !ok {
		return 0, false, fmt.Errorf("strategy %s does not track versions", m.strategy.GetName())
	}
	return v.Version(db)
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
