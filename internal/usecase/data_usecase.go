package usecase

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"medical-tracker/internal/domain/entity"
	"medical-tracker/internal/domain/repository"
	"medical-tracker/internal/service"
	"medical-tracker/pkg/idgen"

	"github.com/sirupsen/logrus"
)

// DataUsecase covers the whole-store operations: first-run setup, export,
// import and the global reset.
type DataUsecase interface {
	Initialize(ctx context.Context) error
	ExportData(ctx context.Context) (*entity.Snapshot, error)
	ImportData(ctx context.Context, snapshot *entity.Snapshot) error
	ClearDatabase(ctx context.Context) error
}

type dataUsecase struct {
	storage             repository.Storage
	log                 *logrus.Logger
	session             service.SessionService
	markerRepo          repository.MarkerRepository
	userRepo            repository.UserRepository
	appointmentRepo     repository.AppointmentRepository
	doctorRepo          repository.DoctorRepository
	medicationRepo      repository.MedicationRepository
	diagnosisRepo       repository.DiagnosisRepository
	testResultRepo      repository.TestResultRepository
	medicalFeedbackRepo repository.MedicalFeedbackRepository
}

func NewDataUsecase(
	storage repository.Storage,
	log *logrus.Logger,
	session service.SessionService,
	markerRepo repository.MarkerRepository,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	medicationRepo repository.MedicationRepository,
	diagnosisRepo repository.DiagnosisRepository,
	testResultRepo repository.TestResultRepository,
	medicalFeedbackRepo repository.MedicalFeedbackRepository,
) DataUsecase {
	return &dataUsecase{
		storage:             storage,
		log:                 log,
		session:             session,
		markerRepo:          markerRepo,
		userRepo:            userRepo,
		appointmentRepo:     appointmentRepo,
		doctorRepo:          doctorRepo,
		medicationRepo:      medicationRepo,
		diagnosisRepo:       diagnosisRepo,
		testResultRepo:      testResultRepo,
		medicalFeedbackRepo: medicalFeedbackRepo,
	}
}

// Initialize writes the empty collections on first run. It never touches an
// already initialized store.
func (u *dataUsecase) Initialize(ctx context.Context) error {
	tx, err := u.storage.Begin(ctx)
	if err != nil {
		u.log.Warnf("Failed to begin transaction: %+v", err)
		return err
	}
	defer tx.Rollback()

	initialized, err := u.markerRepo.IsInitialized(ctx, tx)
	if err != nil {
		u.log.Warnf("Failed to read initialization marker: %+v", err)
		return err
	}
	if initialized {
		return nil
	}

	if err := u.resetCollections(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Info("Initialized empty medical tracker store")
	return nil
}

func (u *dataUsecase) ExportData(ctx context.Context) (*entity.Snapshot, error) {
	user, ok := u.session.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	snapshot := &entity.Snapshot{User: user}
	var err error

	if snapshot.Appointments, err = loadOwned(ctx, u.storage, u.appointmentRepo, user.ID); err != nil {
		u.log.Warnf("Failed to export appointments: %+v", err)
		return nil, err
	}
	if snapshot.Doctors, err = loadOwned(ctx, u.storage, u.doctorRepo, user.ID); err != nil {
		u.log.Warnf("Failed to export doctors: %+v", err)
		return nil, err
	}
	if snapshot.Medications, err = loadOwned(ctx, u.storage, u.medicationRepo, user.ID); err != nil {
		u.log.Warnf("Failed to export medications: %+v", err)
		return nil, err
	}
	if snapshot.Diagnoses, err = loadOwned(ctx, u.storage, u.diagnosisRepo, user.ID); err != nil {
		u.log.Warnf("Failed to export diagnoses: %+v", err)
		return nil, err
	}
	if snapshot.TestResults, err = loadOwned(ctx, u.storage, u.testResultRepo, user.ID); err != nil {
		u.log.Warnf("Failed to export test results: %+v", err)
		return nil, err
	}
	if snapshot.MedicalFeedback, err = loadOwned(ctx, u.storage, u.medicalFeedbackRepo, user.ID); err != nil {
		u.log.Warnf("Failed to export medical feedback: %+v", err)
		return nil, err
	}

	return snapshot, nil
}

// ImportData replaces the session user's records with the snapshot's, in one
// transaction. Record ids are kept unless they are empty, already used by
// another user, or repeated in the snapshot; reassigned doctor and
// appointment ids are rewritten in the references that point at them.
func (u *dataUsecase) ImportData(ctx context.Context, snapshot *entity.Snapshot) error {
	user, ok := u.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	if snapshot == nil {
		return ErrMalformedInput
	}
	if missing := snapshot.MissingCollections(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMalformedInput, strings.Join(missing, ", "))
	}

	tx, err := u.storage.Begin(ctx)
	if err != nil {
		u.log.Warnf("Failed to begin transaction: %+v", err)
		return err
	}
	defer tx.Rollback()

	im := &importer{userID: user.ID, now: timeNow()}

	doctorIDs, err := importCollection(ctx, tx, u.doctorRepo, snapshot.Doctors, im)
	if err != nil {
		u.log.Warnf("Failed to import doctors: %+v", err)
		return err
	}
	appointmentIDs, err := importCollection(ctx, tx, u.appointmentRepo, snapshot.Appointments, im)
	if err != nil {
		u.log.Warnf("Failed to import appointments: %+v", err)
		return err
	}
	if _, err := importCollection(ctx, tx, u.medicationRepo, snapshot.Medications, im); err != nil {
		u.log.Warnf("Failed to import medications: %+v", err)
		return err
	}
	if _, err := importCollection(ctx, tx, u.diagnosisRepo, snapshot.Diagnoses, im); err != nil {
		u.log.Warnf("Failed to import diagnoses: %+v", err)
		return err
	}
	if _, err := importCollection(ctx, tx, u.testResultRepo, snapshot.TestResults, im); err != nil {
		u.log.Warnf("Failed to import test results: %+v", err)
		return err
	}
	if _, err := importCollection(ctx, tx, u.medicalFeedbackRepo, snapshot.MedicalFeedback, im); err != nil {
		u.log.Warnf("Failed to import medical feedback: %+v", err)
		return err
	}

	// Imported references still carry the ids from the snapshot
	if len(doctorIDs) > 0 || len(appointmentIDs) > 0 {
		if err := u.rewriteReferences(ctx, tx, doctorIDs, appointmentIDs); err != nil {
			u.log.Warnf("Failed to rewrite references: %+v", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Imported data for %s", user.Username)
	return nil
}

// ClearDatabase wipes every collection for every user and logs out.
func (u *dataUsecase) ClearDatabase(ctx context.Context) error {
	tx, err := u.storage.Begin(ctx)
	if err != nil {
		u.log.Warnf("Failed to begin transaction: %+v", err)
		return err
	}
	defer tx.Rollback()

	if err := u.resetCollections(ctx, tx); err != nil {
		return err
	}
	if err := u.session.Forget(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.session.Clear()
	u.log.Info("Cleared all medical tracker data")
	return nil
}

func (u *dataUsecase) resetCollections(ctx context.Context, kv repository.KVStore) error {
	steps := []struct {
		name string
		save func() error
	}{
		{"users", func() error { return u.userRepo.Save(ctx, kv, nil) }},
		{"appointments", func() error { return u.appointmentRepo.Save(ctx, kv, nil) }},
		{"doctors", func() error { return u.doctorRepo.Save(ctx, kv, nil) }},
		{"medications", func() error { return u.medicationRepo.Save(ctx, kv, nil) }},
		{"diagnoses", func() error { return u.diagnosisRepo.Save(ctx, kv, nil) }},
		{"test results", func() error { return u.testResultRepo.Save(ctx, kv, nil) }},
		{"medical feedback", func() error { return u.medicalFeedbackRepo.Save(ctx, kv, nil) }},
		{"initialization marker", func() error { return u.markerRepo.MarkInitialized(ctx, kv) }},
	}

	for _, step := range steps {
		if err := step.save(); err != nil {
			u.log.Warnf("Failed to reset %s: %+v", step.name, err)
			return err
		}
	}
	return nil
}

func (u *dataUsecase) rewriteReferences(ctx context.Context, kv repository.KVStore, doctorIDs, appointmentIDs map[string]string) error {
	if err := remapField(ctx, kv, u.appointmentRepo, u.session, func(a *entity.Appointment) *string { return &a.DoctorID }, doctorIDs); err != nil {
		return err
	}
	if err := remapField(ctx, kv, u.diagnosisRepo, u.session, func(d *entity.Diagnosis) *string { return &d.DoctorID }, doctorIDs); err != nil {
		return err
	}
	if err := remapField(ctx, kv, u.testResultRepo, u.session, func(r *entity.TestResult) *string { return &r.DoctorID }, doctorIDs); err != nil {
		return err
	}
	return remapField(ctx, kv, u.medicalFeedbackRepo, u.session, func(f *entity.MedicalFeedback) *string { return &f.AppointmentID }, appointmentIDs)
}

// importer carries the per-import state shared across collections.
type importer struct {
	userID string
	now    time.Time
}

// importCollection drops the user's existing records from the collection and
// appends the imported ones. It returns old id -> new id for every record
// whose id had to be reassigned.
func importCollection[T entity.Entity](ctx context.Context, kv repository.KVStore, repo repository.CollectionRepository[T], imported []T, im *importer) (map[string]string, error) {
	existing, err := repo.Load(ctx, kv)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(existing)+len(imported))
	taken := make(map[string]struct{}, len(existing)+len(imported))
	for _, record := range existing {
		meta := record.Meta()
		if meta.UserID == im.userID {
			continue
		}
		records = append(records, record)
		taken[meta.ID] = struct{}{}
	}

	remapped := make(map[string]string)
	seen := make(map[string]struct{}, len(imported))
	for _, record := range imported {
		if isNilEntity(record) {
			continue
		}

		meta := record.Meta()
		meta.UserID = im.userID
		if meta.CreatedAt.IsZero() {
			meta.CreatedAt = im.now
		}

		oldID := meta.ID
		_, repeated := seen[oldID]
		_, collides := taken[oldID]
		if oldID == "" || repeated || collides {
			meta.ID = idgen.New()
			// A repeat keeps references pointing at the first record with that id
			if oldID != "" && !repeated {
				remapped[oldID] = meta.ID
			}
		}
		seen[oldID] = struct{}{}
		taken[meta.ID] = struct{}{}

		records = append(records, record)
	}

	if err := repo.Save(ctx, kv, records); err != nil {
		return nil, err
	}
	return remapped, nil
}

// remapField rewrites the reference returned by field on the session user's
// records of one collection.
func remapField[T entity.Entity](ctx context.Context, kv repository.KVStore, repo repository.CollectionRepository[T], session service.SessionService, field func(T) *string, ids map[string]string) error {
	if len(ids) == 0 {
		return nil
	}

	user, ok := session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	records, err := repo.Load(ctx, kv)
	if err != nil {
		return err
	}

	changed := false
	for _, record := range records {
		if !record.Meta().OwnedBy(user.ID) {
			continue
		}
		ref := field(record)
		if *ref == "" {
			continue
		}
		if newID, ok := ids[*ref]; ok {
			*ref = newID
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return repo.Save(ctx, kv, records)
}

func loadOwned[T entity.Entity](ctx context.Context, kv repository.KVStore, repo repository.CollectionRepository[T], userID string) ([]T, error) {
	records, err := repo.Load(ctx, kv)
	if err != nil {
		return nil, err
	}
	return ownedBy(records, userID), nil
}

// isNilEntity reports a null entry in an imported array.
func isNilEntity[T entity.Entity](record T) bool {
	v := reflect.ValueOf(record)
	return !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil())
}
