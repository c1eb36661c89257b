package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get when the key holds no value
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the flat key-value substrate every collection is persisted in.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Transaction groups writes that become visible together on Commit.
// Reads through a Transaction observe its own pending writes.
type Transaction interface {
	KVStore
	Commit() error
	// Rollback discards pending writes. It is a no-op after Commit.
	Rollback() error
}

// Storage is a KVStore that can open transactions.
type Storage interface {
	KVStore
	Begin(ctx context.Context) (Transaction, error)
	Close() error
}
