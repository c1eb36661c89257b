package usecase

import (
	"context"
	"errors"
	"slices"
	"time"

	"medical-tracker/internal/domain/entity"
	"medical-tracker/internal/domain/repository"
	"medical-tracker/internal/service"
	"medical-tracker/pkg/idgen"

	"github.com/sirupsen/logrus"
)

// timeNow is swapped in tests
var timeNow = time.Now

// recordStore is the CRUD core shared by every owned collection. All reads
// and writes are scoped to the session user.
type recordStore[T entity.Entity] struct {
	storage  repository.Storage
	log      *logrus.Logger
	session  service.SessionService
	repo     repository.CollectionRepository[T]
	notFound error
	name     string
}

func newRecordStore[T entity.Entity](
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	repo repository.CollectionRepository[T],
	notFound error,
	name string,
) *recordStore[T] {
	return &recordStore[T]{
		storage:  storage,
		log:      log,
		session:  session,
		repo:     repo,
		notFound: notFound,
		name:     name,
	}
}

func (s *recordStore[T]) userID() (string, error) {
	user, ok := s.session.Current()
	if !ok {
		return "", ErrNotAuthenticated
	}
	return user.ID, nil
}

// all returns every record regardless of owner.
func (s *recordStore[T]) all(ctx context.Context) ([]T, error) {
	records, err := s.repo.Load(ctx, s.storage)
	if err != nil {
		s.log.Warnf("Failed to load %s: %+v", s.name, err)
		return nil, err
	}
	return records, nil
}

// owned returns the session user's records. Without a session it returns an
// empty slice and ErrNotAuthenticated.
func (s *recordStore[T]) owned(ctx context.Context) ([]T, error) {
	userID, err := s.userID()
	if err != nil {
		return []T{}, err
	}

	records, err := s.all(ctx)
	if err != nil {
		return []T{}, err
	}
	return ownedBy(records, userID), nil
}

func (s *recordStore[T]) byID(ctx context.Context, id string) (T, error) {
	var zero T

	userID, err := s.userID()
	if err != nil {
		return zero, err
	}

	records, err := s.all(ctx)
	if err != nil {
		return zero, err
	}

	if idx := indexOwned(records, id, userID); idx >= 0 {
		return records[idx], nil
	}
	return zero, s.notFound
}

// add assigns id, owner and creation time, then appends the record.
func (s *recordStore[T]) add(ctx context.Context, record T) (T, error) {
	var zero T

	userID, err := s.userID()
	if err != nil {
		return zero, err
	}

	meta := record.Meta()
	meta.ID = idgen.New()
	meta.UserID = userID
	meta.CreatedAt = timeNow()

	tx, err := s.storage.Begin(ctx)
	if err != nil {
		s.log.Warnf("Failed to begin transaction: %+v", err)
		return zero, err
	}
	defer tx.Rollback()

	records, err := s.repo.Load(ctx, tx)
	if err != nil {
		s.log.Warnf("Failed to load %s: %+v", s.name, err)
		return zero, err
	}

	records = append(records, record)
	if err := s.repo.Save(ctx, tx, records); err != nil {
		s.log.Warnf("Failed to save %s: %+v", s.name, err)
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return zero, err
	}

	return record, nil
}

// update applies merge to the owned record with the given id. The record's
// id, owner and creation time survive whatever merge does.
func (s *recordStore[T]) update(ctx context.Context, id string, merge func(T)) (T, error) {
	var zero T

	userID, err := s.userID()
	if err != nil {
		return zero, err
	}

	tx, err := s.storage.Begin(ctx)
	if err != nil {
		s.log.Warnf("Failed to begin transaction: %+v", err)
		return zero, err
	}
	defer tx.Rollback()

	records, err := s.repo.Load(ctx, tx)
	if err != nil {
		s.log.Warnf("Failed to load %s: %+v", s.name, err)
		return zero, err
	}

	idx := indexOwned(records, id, userID)
	if idx < 0 {
		return zero, s.notFound
	}

	record := records[idx]
	meta := *record.Meta()
	merge(record)
	*record.Meta() = meta

	if err := s.repo.Save(ctx, tx, records); err != nil {
		s.log.Warnf("Failed to save %s: %+v", s.name, err)
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return zero, err
	}

	return record, nil
}

func (s *recordStore[T]) remove(ctx context.Context, id string) error {
	userID, err := s.userID()
	if err != nil {
		return err
	}

	tx, err := s.storage.Begin(ctx)
	if err != nil {
		s.log.Warnf("Failed to begin transaction: %+v", err)
		return err
	}
	defer tx.Rollback()

	records, err := s.repo.Load(ctx, tx)
	if err != nil {
		s.log.Warnf("Failed to load %s: %+v", s.name, err)
		return err
	}

	idx := indexOwned(records, id, userID)
	if idx < 0 {
		return s.notFound
	}

	records = slices.Delete(records, idx, idx+1)
	if err := s.repo.Save(ctx, tx, records); err != nil {
		s.log.Warnf("Failed to save %s: %+v", s.name, err)
		return err
	}

	if err := tx.Commit(); err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// labels maps the session user's record ids to a display label. It backs
// the soft reference lookups, so dangling ids simply have no entry.
func (s *recordStore[T]) labels(ctx context.Context, label func(T) string) (map[string]string, error) {
	records, err := s.owned(ctx)
	if err != nil {
		return map[string]string{}, err
	}

	out := make(map[string]string, len(records))
	for _, record := range records {
		out[record.Meta().ID] = label(record)
	}
	return out, nil
}

// label resolves one reference, returning "" for anything that cannot be resolved.
func (s *recordStore[T]) label(ctx context.Context, id string, label func(T) string) string {
	if id == "" {
		return ""
	}

	record, err := s.byID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotAuthenticated) && !errors.Is(err, ErrNotFound) {
			s.log.Warnf("Failed to resolve %s %s: %+v", s.name, id, err)
		}
		return ""
	}
	return label(record)
}

func ownedBy[T entity.Entity](records []T, userID string) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		if record.Meta().OwnedBy(userID) {
			out = append(out, record)
		}
	}
	return out
}

func indexOwned[T entity.Entity](records []T, id, userID string) int {
	if id == "" {
		return -1
	}
	for i, record := range records {
		meta := record.Meta()
		if meta.ID == id && meta.OwnedBy(userID) {
			return i
		}
	}
	return -1
}
