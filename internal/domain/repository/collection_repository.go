package repository

import (
	"context"

	"medical-tracker/internal/domain/entity"
)

// CollectionRepository loads and saves one persisted collection as a whole.
type CollectionRepository[T any] interface {
	Load(ctx context.Context, kv KVStore) ([]T, error)
	Save(ctx context.Context, kv KVStore, records []T) error
	// Key returns the storage key the collection lives under
	Key() string
}

type (
	UserRepository            = CollectionRepository[*entity.User]
	AppointmentRepository     = CollectionRepository[*entity.Appointment]
	DoctorRepository          = CollectionRepository[*entity.Doctor]
	MedicationRepository      = CollectionRepository[*entity.Medication]
	DiagnosisRepository       = CollectionRepository[*entity.Diagnosis]
	TestResultRepository      = CollectionRepository[*entity.TestResult]
	MedicalFeedbackRepository = CollectionRepository[*entity.MedicalFeedback]
)
