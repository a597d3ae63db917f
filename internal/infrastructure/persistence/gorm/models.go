// Package gorm provides the GORM-backed persistence layer for accepted
// extractions.
package gorm

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wellfed/extraction/internal/infrastructure/config"
)

// ExtractionModel is the database row for one saved extraction. The full
// typed record travels as a JSON payload; the scalar columns exist for
// listing and filtering without deserializing it.
type ExtractionModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID `gorm:"type:char(36);not null;index"`
	Type         string    `gorm:"type:varchar(20);not null;index"`
	Title        string    `gorm:"type:varchar(255);index"`
	Payload      []byte    `gorm:"type:json;not null"`
	IsValid      bool      `gorm:"not null"`
	Completeness int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName overrides the default pluralization.
func (ExtractionModel) TableName() string {
	return "extractions"
}

// NewDatabase opens the configured database and runs migrations when
// auto-migrate is enabled.
func NewDatabase(cfg config.DatabaseConfig, dsn string, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&ExtractionModel{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	logger.Info("database connected",
		zap.String("driver", cfg.Driver),
		zap.Bool("autoMigrate", cfg.AutoMigrate))

	return db, nil
}
