package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finz/backend/config"
)

// NewSQLiteConnection opens the local SQLite file, creating its directory if needed.
// The pool is pinned to a single connection so slot writes serialize in SQLite itself.
func NewSQLiteConnection(cfg *config.DatabaseConfig) (*Database, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "." && cfg.SQLitePath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return configure(db, cfg, config.StorageBackendSQLite, 1, 1)
}
