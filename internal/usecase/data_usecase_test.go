package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
	"medical-tracker/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seed gives the current user one record of every kind, wired together.
func seed(t *testing.T, env *testEnv) {
	t.Helper()

	doctor := env.addDoctor(t, "Dr. Lee")
	appointment, err := env.appointments.AddAppointment(env.ctx, &dto.CreateAppointmentRequest{
		Title:    "Checkup",
		DoctorID: doctor.ID,
		Date:     "2030-01-01T10:00",
	})
	require.NoError(t, err)
	_, err = env.medications.AddMedication(env.ctx, &dto.CreateMedicationRequest{Name: "Ibuprofen", Dosage: "200mg"})
	require.NoError(t, err)
	_, err = env.diagnoses.AddDiagnosis(env.ctx, &dto.CreateDiagnosisRequest{Condition: "Asthma", DoctorID: doctor.ID})
	require.NoError(t, err)
	_, err = env.testResults.AddTestResult(env.ctx, &dto.CreateTestResultRequest{TestName: "CBC", DoctorID: doctor.ID})
	require.NoError(t, err)
	_, err = env.feedback.AddMedicalFeedback(env.ctx, &dto.CreateMedicalFeedbackRequest{AppointmentID: appointment.ID, Notes: "All good"})
	require.NoError(t, err)
}

func TestDataUsecase_InitializeIsGuarded(t *testing.T) {
	env := newTestEnv(t)

	for _, key := range []string{"users", "appointments", "doctors", "medications", "diagnoses", "testResults", "medicalFeedback"} {
		raw, err := env.storage.Get(env.ctx, "medicalTracker_"+key)
		require.NoError(t, err, key)
		assert.Equal(t, "[]", string(raw), key)
	}

	env.register(t, "alice")
	env.addDoctor(t, "Dr. Lee")

	require.NoError(t, env.data.Initialize(env.ctx))

	doctors, err := env.doctors.GetUserDoctors(env.ctx)
	require.NoError(t, err)
	assert.Len(t, doctors, 1, "second initialize keeps data")
}

func TestDataUsecase_Export(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.data.ExportData(env.ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	env.register(t, "bob")
	seed(t, env)

	alice := env.register(t, "alice")
	seed(t, env)

	snapshot, err := env.data.ExportData(env.ctx)
	require.NoError(t, err)

	assert.Equal(t, alice.ID, snapshot.User.ID)
	assert.Len(t, snapshot.Doctors, 1)
	assert.Len(t, snapshot.Appointments, 1)
	assert.Len(t, snapshot.MedicalFeedback, 1)
	for _, doctor := range snapshot.Doctors {
		assert.Equal(t, alice.ID, doctor.UserID)
	}

	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	for _, key := range []string{`"user"`, `"appointments"`, `"doctors"`, `"medications"`, `"diagnoses"`, `"testResults"`, `"medicalFeedback"`} {
		assert.Contains(t, string(raw), key)
	}
}

func TestDataUsecase_ImportRoundTripPreservesIDs(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	seed(t, env)

	exported, err := env.data.ExportData(env.ctx)
	require.NoError(t, err)
	raw, err := json.Marshal(exported)
	require.NoError(t, err)

	// Drift away from the export, then restore it
	env.addDoctor(t, "Dr. Extra")
	require.NoError(t, env.medications.DeleteMedication(env.ctx, exported.Medications[0].ID))

	var snapshot entity.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	require.NoError(t, env.data.ImportData(env.ctx, &snapshot))

	restored, err := env.data.ExportData(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, exported.Doctors, restored.Doctors)
	assert.Equal(t, exported.Appointments, restored.Appointments)
	assert.Equal(t, exported.Medications, restored.Medications)
	assert.Equal(t, exported.Diagnoses, restored.Diagnoses)
	assert.Equal(t, exported.TestResults, restored.TestResults)
	assert.Equal(t, exported.MedicalFeedback, restored.MedicalFeedback)
}

func TestDataUsecase_ImportIntoSecondAccountRemapsIDs(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	seed(t, env)

	exported, err := env.data.ExportData(env.ctx)
	require.NoError(t, err)
	raw, err := json.Marshal(exported)
	require.NoError(t, err)

	bob := env.register(t, "bob")
	var snapshot entity.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	require.NoError(t, env.data.ImportData(env.ctx, &snapshot))

	imported, err := env.data.ExportData(env.ctx)
	require.NoError(t, err)
	require.Len(t, imported.Doctors, 1)
	require.Len(t, imported.Appointments, 1)

	newDoctor := imported.Doctors[0]
	assert.NotEqual(t, exported.Doctors[0].ID, newDoctor.ID, "ids owned by another user are reassigned")
	assert.Equal(t, bob.ID, newDoctor.UserID)
	assert.Equal(t, newDoctor.ID, imported.Appointments[0].DoctorID)
	assert.Equal(t, newDoctor.ID, imported.Diagnoses[0].DoctorID)
	assert.Equal(t, newDoctor.ID, imported.TestResults[0].DoctorID)
	assert.Equal(t, imported.Appointments[0].ID, imported.MedicalFeedback[0].AppointmentID)
	assert.Equal(t, "Dr. Lee", env.doctors.GetDoctorName(env.ctx, imported.Appointments[0].DoctorID))

	env.login(t, "alice")
	mine, err := env.data.ExportData(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, exported.Doctors, mine.Doctors, "alice is untouched")
}

func TestDataUsecase_ImportAssignsMissingFields(t *testing.T) {
	useClock(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	raw := `{
		"user": null,
		"appointments": [],
		"doctors": [
			{"id": "d1", "userId": "someone-else", "name": "Dr. One"},
			{"id": "d1", "name": "Dr. Duplicate"},
			{"name": "Dr. NoID"},
			null
		],
		"medications": [{"id": "m1", "name": "Aspirin", "createdAt": "2023-05-05T00:00:00Z"}],
		"diagnoses": [{"id": "x", "condition": "Flu", "doctorId": "d1"}],
		"testResults": [],
		"medicalFeedback": []
	}`
	var snapshot entity.Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))
	require.NoError(t, env.data.ImportData(env.ctx, &snapshot))

	doctors, err := env.doctors.GetUserDoctors(env.ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 3, "null entries are skipped")

	ids := map[string]bool{}
	for _, doctor := range doctors {
		assert.Equal(t, alice.ID, doctor.UserID, "owner is forced to the session user")
		assert.NotEmpty(t, doctor.ID)
		assert.False(t, doctor.CreatedAt.IsZero())
		ids[doctor.ID] = true
	}
	assert.Len(t, ids, 3, "duplicate and empty ids are replaced")
	assert.Equal(t, "d1", doctors[0].ID, "first occurrence keeps its id")

	diagnoses, err := env.diagnoses.GetUserDiagnoses(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "d1", diagnoses[0].DoctorID, "references follow the first occurrence")

	medications, err := env.medications.GetUserMedications(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 5, 0, 0, 0, 0, time.UTC), medications[0].CreatedAt.UTC(), "existing createdAt is kept")
}

func TestDataUsecase_ImportRejects(t *testing.T) {
	env := newTestEnv(t)

	assert.ErrorIs(t, env.data.ImportData(env.ctx, &entity.Snapshot{}), ErrNotAuthenticated)

	env.register(t, "alice")
	seed(t, env)

	tests := []struct {
		name     string
		snapshot *entity.Snapshot
	}{
		{"nil snapshot", nil},
		{"all collections missing", &entity.Snapshot{}},
		{"one collection missing", &entity.Snapshot{
			Appointments:    []*entity.Appointment{},
			Doctors:         []*entity.Doctor{},
			Medications:     []*entity.Medication{},
			Diagnoses:       []*entity.Diagnosis{},
			TestResults:     []*entity.TestResult{},
			MedicalFeedback: nil,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.data.ImportData(env.ctx, tt.snapshot)
			assert.ErrorIs(t, err, ErrMalformedInput)

			doctors, err := env.doctors.GetUserDoctors(env.ctx)
			require.NoError(t, err)
			assert.Len(t, doctors, 1, "nothing was removed")
		})
	}
}

func TestDataUsecase_ImportIsAtomic(t *testing.T) {
	store := &failingStorage{MemoryStorage: storage.NewMemoryStorage()}
	env := newTestEnvWithStorage(t, store)
	env.register(t, "alice")
	seed(t, env)

	before, err := env.data.ExportData(env.ctx)
	require.NoError(t, err)

	store.failKey = "medicalTracker_medicalFeedback"

	err = env.data.ImportData(env.ctx, &entity.Snapshot{
		Appointments:    []*entity.Appointment{},
		Doctors:         []*entity.Doctor{{Name: "Dr. New"}},
		Medications:     []*entity.Medication{},
		Diagnoses:       []*entity.Diagnosis{},
		TestResults:     []*entity.TestResult{},
		MedicalFeedback: []*entity.MedicalFeedback{},
	})
	assert.ErrorIs(t, err, errDiskFull)

	after, err := env.data.ExportData(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a failed import leaves every collection unchanged")
}

func TestDataUsecase_ClearDatabase(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")
	seed(t, env)
	env.register(t, "alice")
	seed(t, env)

	require.NoError(t, env.data.ClearDatabase(env.ctx))

	doctors, err := env.doctors.GetUserDoctors(env.ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, doctors)

	_, err = env.auth.CurrentUser(env.ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	all, err := env.doctors.GetAllDoctors(env.ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "other users' data is wiped too")

	_, err = env.auth.Login(env.ctx, &dto.LoginRequest{Username: "bob", Password: "pw-bob"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "accounts are gone")

	initialized, err := env.storage.Get(env.ctx, "medicalTracker_initialized")
	require.NoError(t, err)
	assert.Equal(t, "true", string(initialized))

	restarted := newTestEnvWithStorage(t, env.storage)
	_, err = restarted.auth.CurrentUser(env.ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated, "the session pointer is removed")
}
