package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
)

type sessionRepository struct {
	key string
}

func NewSessionRepository(prefix string) domainRepo.SessionRepository {
	return &sessionRepository{key: prefix + KeyCurrentUser}
}

func (r *sessionRepository) Load(ctx context.Context, kv domainRepo.KVStore) (*entity.SessionUser, error) {
	raw, err := kv.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, domainRepo.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var user *entity.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return user, nil
}

func (r *sessionRepository) Save(ctx context.Context, kv domainRepo.KVStore, user *entity.SessionUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return kv.Set(ctx, r.key, raw)
}

func (r *sessionRepository) Clear(ctx context.Context, kv domainRepo.KVStore) error {
	return kv.Delete(ctx, r.key)
}
