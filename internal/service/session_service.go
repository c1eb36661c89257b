package service

import (
	"context"
	"sync"

	"medical-tracker/internal/domain/entity"
	"medical-tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// SessionService holds the logged-in user for the lifetime of the process.
// The persisted pointer is written through the caller's transaction; the
// in-memory value is only swapped once that transaction has committed.
type SessionService interface {
	Load(ctx context.Context) error
	Current() (*entity.SessionUser, bool)
	Persist(ctx context.Context, kv repository.KVStore, user *entity.SessionUser) error
	Forget(ctx context.Context, kv repository.KVStore) error
	Set(user *entity.SessionUser)
	Clear()
}

type sessionService struct {
	mu          sync.RWMutex
	storage     repository.Storage
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	currentUser *entity.SessionUser
}

func NewSessionService(storage repository.Storage, log *logrus.Logger, sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{
		storage:     storage,
		log:         log,
		sessionRepo: sessionRepo,
	}
}

// Load reads the persisted session pointer, if any.
func (s *sessionService) Load(ctx context.Context) error {
	user, err := s.sessionRepo.Load(ctx, s.storage)
	if err != nil {
		s.log.Warnf("Failed to load session: %+v", err)
		return err
	}

	s.Set(user)
	if user != nil {
		s.log.Infof("Restored session for %s", user.Username)
	}
	return nil
}

func (s *sessionService) Current() (*entity.SessionUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil, false
	}
	user := *s.currentUser
	return &user, true
}

func (s *sessionService) Persist(ctx context.Context, kv repository.KVStore, user *entity.SessionUser) error {
	if err := s.sessionRepo.Save(ctx, kv, user); err != nil {
		s.log.Warnf("Failed to persist session: %+v", err)
		return err
	}
	return nil
}

func (s *sessionService) Forget(ctx context.Context, kv repository.KVStore) error {
	if err := s.sessionRepo.Clear(ctx, kv); err != nil {
		s.log.Warnf("Failed to clear session: %+v", err)
		return err
	}
	return nil
}

func (s *sessionService) Set(user *entity.SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		s.currentUser = nil
		return
	}
	copied := *user
	s.currentUser = &copied
}

func (s *sessionService) Clear() {
	s.Set(nil)
}
