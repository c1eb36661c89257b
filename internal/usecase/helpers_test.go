package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
	"medical-tracker/internal/infrastructure/storage"
	"medical-tracker/internal/repository"
	"medical-tracker/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	ctx          context.Context
	storage      domainRepo.Storage
	session      service.SessionService
	auth         AuthUsecase
	appointments AppointmentUsecase
	doctors      DoctorUsecase
	medications  MedicationUsecase
	diagnoses    DiagnosisUsecase
	testResults  TestResultUsecase
	feedback     MedicalFeedbackUsecase
	dashboard    DashboardUsecase
	data         DataUsecase
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStorage(t, storage.NewMemoryStorage())
}

func newTestEnvWithStorage(t *testing.T, store domainRepo.Storage) *testEnv {
	t.Helper()

	ctx := context.Background()
	log := newTestLogger()
	prefix := repository.DefaultKeyPrefix

	userRepo := repository.NewUserRepository(prefix)
	appointmentRepo := repository.NewAppointmentRepository(prefix)
	doctorRepo := repository.NewDoctorRepository(prefix)
	medicationRepo := repository.NewMedicationRepository(prefix)
	diagnosisRepo := repository.NewDiagnosisRepository(prefix)
	testResultRepo := repository.NewTestResultRepository(prefix)
	feedbackRepo := repository.NewMedicalFeedbackRepository(prefix)

	session := service.NewSessionService(store, log, repository.NewSessionRepository(prefix))
	require.NoError(t, session.Load(ctx))

	env := &testEnv{
		ctx:          ctx,
		storage:      store,
		session:      session,
		auth:         NewAuthUsecase(store, log, session, userRepo),
		appointments: NewAppointmentUsecase(store, log, session, appointmentRepo, doctorRepo),
		doctors:      NewDoctorUsecase(store, log, session, doctorRepo),
		medications:  NewMedicationUsecase(store, log, session, medicationRepo),
		diagnoses:    NewDiagnosisUsecase(store, log, session, diagnosisRepo, doctorRepo),
		testResults:  NewTestResultUsecase(store, log, session, testResultRepo, doctorRepo),
		feedback:     NewMedicalFeedbackUsecase(store, log, session, feedbackRepo, appointmentRepo),
		data: NewDataUsecase(store, log, session, repository.NewMarkerRepository(prefix),
			userRepo, appointmentRepo, doctorRepo, medicationRepo, diagnosisRepo, testResultRepo, feedbackRepo),
	}
	env.dashboard = NewDashboardUsecase(log, env.auth, env.appointments, env.doctors, env.medications, env.diagnoses)

	require.NoError(t, env.data.Initialize(ctx))
	return env
}

func (e *testEnv) register(t *testing.T, username string) *entity.SessionUser {
	t.Helper()
	user, err := e.auth.Register(e.ctx, &dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "pw-" + username,
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) login(t *testing.T, username string) {
	t.Helper()
	_, err := e.auth.Login(e.ctx, &dto.LoginRequest{Username: username, Password: "pw-" + username})
	require.NoError(t, err)
}

func (e *testEnv) addDoctor(t *testing.T, name string) *entity.Doctor {
	t.Helper()
	doctor, err := e.doctors.AddDoctor(e.ctx, &dto.CreateDoctorRequest{Name: name})
	require.NoError(t, err)
	return doctor
}

// useClock makes timeNow start at start and advance a minute per call.
func useClock(t *testing.T, start time.Time) {
	t.Helper()
	current := start
	timeNow = func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
	t.Cleanup(func() { timeNow = time.Now })
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

var errDiskFull = errors.New("disk full")

// failingStorage fails every transactional write to failKey.
type failingStorage struct {
	*storage.MemoryStorage
	failKey string
}

func (s *failingStorage) Begin(ctx context.Context) (domainRepo.Transaction, error) {
	tx, err := s.MemoryStorage.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &failingTx{Transaction: tx, failKey: s.failKey}, nil
}

type failingTx struct {
	domainRepo.Transaction
	failKey string
}

func (t *failingTx) Set(ctx context.Context, key string, value []byte) error {
	if key == t.failKey {
		return errDiskFull
	}
	return t.Transaction.Set(ctx, key, value)
}
