package repository

import "context"

// MarkerRepository tracks the one-time initialization marker.
type MarkerRepository interface {
	IsInitialized(ctx context.Context, kv KVStore) (bool, error)
	MarkInitialized(ctx context.Context, kv KVStore) error
}
