package repository

import (
	"context"
	"testing"
	"time"

	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
	"medical-tracker/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key loads empty", func(t *testing.T) {
		kv := storage.NewMemoryStorage()
		repo := NewDoctorRepository(DefaultKeyPrefix)

		doctors, err := repo.Load(ctx, kv)
		require.NoError(t, err)
		assert.NotNil(t, doctors)
		assert.Empty(t, doctors)
	})

	t.Run("save nil writes an empty array", func(t *testing.T) {
		kv := storage.NewMemoryStorage()
		repo := NewMedicationRepository(DefaultKeyPrefix)

		require.NoError(t, repo.Save(ctx, kv, nil))

		raw, err := kv.Get(ctx, "medicalTracker_medications")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
	})

	t.Run("round trip keeps the camelCase wire shape", func(t *testing.T) {
		kv := storage.NewMemoryStorage()
		repo := NewAppointmentRepository(DefaultKeyPrefix)
		created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

		in := []*entity.Appointment{{
			Record:   entity.Record{ID: "a1", UserID: "u1", CreatedAt: created},
			Title:    "Checkup",
			DoctorID: "d1",
			Date:     "2024-05-02T10:00",
			Status:   entity.AppointmentStatusScheduled,
			Reminder: true,
		}}
		require.NoError(t, repo.Save(ctx, kv, in))

		raw, err := kv.Get(ctx, repo.Key())
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"userId":"u1"`)
		assert.Contains(t, string(raw), `"doctorId":"d1"`)

		out, err := repo.Load(ctx, kv)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, in[0], out[0])
	})

	t.Run("null entries are dropped", func(t *testing.T) {
		kv := storage.NewMemoryStorage()
		repo := NewTestResultRepository(DefaultKeyPrefix)
		require.NoError(t, kv.Set(ctx, repo.Key(), []byte(`[null,{"id":"t1","testName":"CBC"},null]`)))

		out, err := repo.Load(ctx, kv)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "CBC", out[0].TestName)
	})

	t.Run("corrupt json is an error", func(t *testing.T) {
		kv := storage.NewMemoryStorage()
		repo := NewUserRepository(DefaultKeyPrefix)
		require.NoError(t, kv.Set(ctx, repo.Key(), []byte(`{not json`)))

		_, err := repo.Load(ctx, kv)
		assert.Error(t, err)
	})

	t.Run("keys follow the prefix", func(t *testing.T) {
		keys := map[string]string{
			NewUserRepository("p_").Key():            "p_users",
			NewAppointmentRepository("p_").Key():     "p_appointments",
			NewDoctorRepository("p_").Key():          "p_doctors",
			NewMedicationRepository("p_").Key():      "p_medications",
			NewDiagnosisRepository("p_").Key():       "p_diagnoses",
			NewTestResultRepository("p_").Key():      "p_testResults",
			NewMedicalFeedbackRepository("p_").Key(): "p_medicalFeedback",
		}
		for got, want := range keys {
			assert.Equal(t, want, got)
		}
	})
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStorage()
	repo := NewSessionRepository(DefaultKeyPrefix)

	user, err := repo.Load(ctx, kv)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, repo.Save(ctx, kv, &entity.SessionUser{ID: "u1", Username: "alice"}))

	raw, err := kv.Get(ctx, "medicalTracker_currentUser")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	user, err = repo.Load(ctx, kv)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	require.NoError(t, repo.Clear(ctx, kv))
	_, err = kv.Get(ctx, "medicalTracker_currentUser")
	assert.ErrorIs(t, err, domainRepo.ErrKeyNotFound)
}

func TestMarkerRepository(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStorage()
	repo := NewMarkerRepository(DefaultKeyPrefix)

	ok, err := repo.IsInitialized(ctx, kv)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.MarkInitialized(ctx, kv))

	ok, err = repo.IsInitialized(ctx, kv)
	require.NoError(t, err)
	assert.True(t, ok)
}
