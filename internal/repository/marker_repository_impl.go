package repository

import (
	"context"
	"errors"

	domainRepo "medical-tracker/internal/domain/repository"
)

type markerRepository struct {
	key string
}

func NewMarkerRepository(prefix string) domainRepo.MarkerRepository {
	return &markerRepository{key: prefix + KeyInitialized}
}

func (r *markerRepository) IsInitialized(ctx context.Context, kv domainRepo.KVStore) (bool, error) {
	raw, err := kv.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, domainRepo.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return string(raw) == "true", nil
}

func (r *markerRepository) MarkInitialized(ctx context.Context, kv domainRepo.KVStore) error {
	return kv.Set(ctx, r.key, []byte("true"))
}
