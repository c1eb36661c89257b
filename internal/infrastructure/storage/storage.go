package storage

import (
	"context"
	"fmt"

	"medical-tracker/config"
	domainRepo "medical-tracker/internal/domain/repository"
	"medical-tracker/internal/infrastructure/cache"
	"medical-tracker/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Open connects the storage backend selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (domainRepo.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn("Using in-memory storage, data will not be persisted")
		return NewMemoryStorage(), nil

	case config.DriverRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		return NewRedisStorage(client, log), nil

	case config.DriverSQLite, "":
		db, err := database.NewSQLiteConnection(cfg.Storage.SQLitePath, database.GormConfig(cfg.App.IsDevelopment()), log)
		if err != nil {
			return nil, err
		}
		return newGormStorageOrClose(db, log)

	case config.DriverPostgres:
		db, err := database.NewPostgresConnection(ctx, cfg.DB, database.GormConfig(cfg.App.IsDevelopment()), log)
		if err != nil {
			return nil, err
		}
		return newGormStorageOrClose(db, log)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newGormStorageOrClose(db *gorm.DB, log *logrus.Logger) (domainRepo.Storage, error) {
	s, err := NewGormStorage(db, log)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}
	return s, nil
}
