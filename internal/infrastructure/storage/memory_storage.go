package storage

import (
	"context"
	"sync"

	domainRepo "medical-tracker/internal/domain/repository"
)

// MemoryStorage keeps every key in process memory. Nothing survives Close.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, domainRepo.ErrKeyNotFound
	}
	return clone(value), nil
}

func (s *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = clone(value)
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *MemoryStorage) Begin(ctx context.Context) (domainRepo.Transaction, error) {
	return newBufferedTx(ctx, s, s.apply), nil
}

func (s *MemoryStorage) apply(_ context.Context, ops []writeOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, op := range ops {
		if op.delete {
			delete(s.data, op.key)
			continue
		}
		s.data[op.key] = op.value
	}
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}
