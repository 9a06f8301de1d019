package database

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brasilnasteam/backend/internal/config"
	"brasilnasteam/backend/internal/models"
)

// Connect opens the postgres pool, applies the pool limits and optionally migrates the schema.
func Connect(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             cfg.DBSlowThreshold, // Slow SQL threshold
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	log.Info("database_connected",
		slog.Int("max_open_conns", cfg.DBMaxOpenConns),
		slog.Duration("conn_max_lifetime", cfg.DBConnMaxLifetime))

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Info("database_migrated")
	}
	return db, nil
}

// Migrate creates or updates the schema. The ingestion pipeline owns the
// production schema; this is meant for local and test databases.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// SQLX wraps the gorm pool for statements rendered outside gorm.
func SQLX(db *gorm.DB) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlx.NewDb(sqlDB, "pgx"), nil
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
