package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	domainRepo "medical-tracker/internal/domain/repository"
)

// collectionRepository stores a whole collection as one JSON array under key.
type collectionRepository[T any] struct {
	key string
}

func newCollectionRepository[T any](prefix, name string) *collectionRepository[T] {
	return &collectionRepository[T]{key: prefix + name}
}

func (r *collectionRepository[T]) Key() string {
	return r.key
}

func (r *collectionRepository[T]) Load(ctx context.Context, kv domainRepo.KVStore) ([]T, error) {
	raw, err := kv.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, domainRepo.ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", r.key, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.key, err)
	}

	// Drop null entries so callers never see nil records
	kept := records[:0]
	for _, record := range records {
		if !isNil(record) {
			kept = append(kept, record)
		}
	}
	return kept, nil
}

func (r *collectionRepository[T]) Save(ctx context.Context, kv domainRepo.KVStore, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	if err := kv.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
