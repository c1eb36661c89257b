package storage

import (
	"context"
	"errors"
	"fmt"

	domainRepo "medical-tracker/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStorage maps every key to a plain redis string. Transactions are
// buffered and applied with a single MULTI/EXEC.
type RedisStorage struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisStorage(client *redis.Client, log *logrus.Logger) *RedisStorage {
	return &RedisStorage{
		client: client,
		log:    log,
	}
}

func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domainRepo.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return value, nil
}

func (s *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) Begin(ctx context.Context) (domainRepo.Transaction, error) {
	return newBufferedTx(ctx, s, s.apply), nil
}

func (s *RedisStorage) apply(ctx context.Context, ops []writeOp) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, op := range ops {
			if op.delete {
				pipe.Del(ctx, op.key)
				continue
			}
			pipe.Set(ctx, op.key, op.value, 0)
		}
		return nil
	})
	if err != nil {
		s.log.Warnf("Failed to commit redis transaction: %+v", err)
		return fmt.Errorf("redis transaction: %w", err)
	}

	s.log.Debugf("Committed %d keys to redis", len(ops))
	return nil
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}
