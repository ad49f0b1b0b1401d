package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hydromon/internal/config"
	"hydromon/internal/model"
)

// Store wraps the gorm handle shared by the CRUD proxy and the alert path.
// All authoritative state lives in the managed database; the store keeps
// nothing of its own.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func Open(cfg *config.Config, log *zap.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.PlantProfile{},
		&model.MultiplantProfile{},
		&model.SensorReading{},
		&model.SystemConfig{},
		&model.UserProfile{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.seedSystemConfig(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedSystemConfig makes sure the singleton row exists so selection updates
// are always plain saves.
func (s *Store) seedSystemConfig() error {
	var cfg model.SystemConfig
	r := s.db.First(&cfg, 1)
	if r.Error == nil {
		return nil
	}
	if !errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("read system config: %w", r.Error)
	}
	cfg = model.SystemConfig{ID: 1}
	if err := s.db.Create(&cfg).Error; err != nil {
		return fmt.Errorf("seed system config: %w", err)
	}
	return nil
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
