package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainRepo "medical-tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one persisted key. Values are the raw JSON blobs.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;type:varchar(255);primaryKey"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormStorage keeps keys in the kv_entries table of a SQL database (SQLite or PostgreSQL).
type GormStorage struct {
	gormKV
	log *logrus.Logger
}

// NewGormStorage migrates the kv_entries table and returns the storage.
func NewGormStorage(db *gorm.DB, log *logrus.Logger) (*GormStorage, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &GormStorage{
		gormKV: gormKV{db: db},
		log:    log,
	}, nil
}

func (s *GormStorage) Begin(ctx context.Context) (domainRepo.Transaction, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	return &gormTx{gormKV: gormKV{db: tx}}, nil
}

func (s *GormStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormKV implements KVStore over any *gorm.DB, including an open transaction.
type gormKV struct {
	db *gorm.DB
}

func (k gormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := k.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRepo.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return entry.Value, nil
}

func (k gormKV) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	entry := &KVEntry{Key: key, Value: value}
	err := k.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (k gormKV) Delete(ctx context.Context, key string) error {
	if err := k.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

type gormTx struct {
	gormKV
	done bool
}

func (t *gormTx) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	return t.db.Commit().Error
}

func (t *gormTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.db.Rollback().Error
}
