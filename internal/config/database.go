package config

import (
	"fmt"
	"log"

	"github.com/blaisecz/vital-quest/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the postgres connection pool. LOG_LEVEL=debug turns on
// gorm's SQL logging.
func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	sqlDB.SetMaxIdleConns(min(cfg.DatabaseMaxIdleConns, cfg.DatabaseMaxOpenConns))
	sqlDB.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)

	log.Printf("Database connection established (max open conns %d)", cfg.DatabaseMaxOpenConns)
	return db, nil
}

// Migrate creates or updates the schema of every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.DailyLogRecord{}, &domain.Battle{})
}
