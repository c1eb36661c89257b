package repository

import (
	"context"

	"medical-tracker/internal/domain/entity"
)

// SessionRepository persists the current session pointer.
type SessionRepository interface {
	// Load returns nil when nobody is logged in
	Load(ctx context.Context, kv KVStore) (*entity.SessionUser, error)
	Save(ctx context.Context, kv KVStore, user *entity.SessionUser) error
	Clear(ctx context.Context, kv KVStore) error
}
