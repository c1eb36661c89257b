package storage

import (
	"context"
	"errors"

	domainRepo "medical-tracker/internal/domain/repository"
)

// ErrTxDone is returned when a finished transaction is used again
var ErrTxDone = errors.New("transaction already committed or rolled back")

type writeOp struct {
	key    string
	value  []byte
	delete bool
}

// bufferedTx collects writes in memory and hands them to apply on Commit.
// Backends whose native transactions do not fit the KV shape (memory, redis)
// build on it and only need an atomic apply.
type bufferedTx struct {
	ctx     context.Context
	base    domainRepo.KVStore
	pending map[string]writeOp
	order   []string
	apply   func(ctx context.Context, ops []writeOp) error
	done    bool
}

func newBufferedTx(ctx context.Context, base domainRepo.KVStore, apply func(ctx context.Context, ops []writeOp) error) *bufferedTx {
	return &bufferedTx{
		ctx:     ctx,
		base:    base,
		pending: make(map[string]writeOp),
		apply:   apply,
	}
}

func (t *bufferedTx) Get(ctx context.Context, key string) ([]byte, error) {
	if t.done {
		return nil, ErrTxDone
	}
	if op, ok := t.pending[key]; ok {
		if op.delete {
			return nil, domainRepo.ErrKeyNotFound
		}
		return clone(op.value), nil
	}
	return t.base.Get(ctx, key)
}

func (t *bufferedTx) Set(_ context.Context, key string, value []byte) error {
	return t.record(writeOp{key: key, value: clone(value)})
}

func (t *bufferedTx) Delete(_ context.Context, key string) error {
	return t.record(writeOp{key: key, delete: true})
}

func (t *bufferedTx) record(op writeOp) error {
	if t.done {
		return ErrTxDone
	}
	if _, seen := t.pending[op.key]; !seen {
		t.order = append(t.order, op.key)
	}
	t.pending[op.key] = op
	return nil
}

func (t *bufferedTx) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true

	ops := make([]writeOp, 0, len(t.order))
	for _, key := range t.order {
		ops = append(ops, t.pending[key])
	}
	t.pending = nil
	if len(ops) == 0 {
		return nil
	}
	return t.apply(t.ctx, ops)
}

func (t *bufferedTx) Rollback() error {
	t.done = true
	t.pending = nil
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
