package database

import (
	"fmt"
	"log"

	"github.com/pospoint/terminal-api/internal/config"
	"github.com/pospoint/terminal-api/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the terminal's local SQLite store
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local database %s: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite serializes writes; a single connection avoids busy errors.
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Local database ready at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all terminal-local entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.ClientState{},
		&entity.PendingSale{},
		&entity.CachedCustomer{},
		&entity.Operator{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDefaultState writes initial client state for a fresh terminal. Existing
// keys are left untouched so reinstalls keep the operator's settings.
func SeedDefaultState(db *gorm.DB) error {
	defaults := []entity.ClientState{
		{Key: entity.StateKeyActiveRole, Value: "admin"},
	}

	for i := range defaults {
		var existing entity.ClientState
		if err := db.Where("key = ?", defaults[i].Key).First(&existing).Error; err != nil {
			if err := db.Create(&defaults[i]).Error; err != nil {
				log.Printf("Warning: failed to seed state key %s: %v", defaults[i].Key, err)
			}
		}
	}
	return nil
}
