package repository

import (
	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
)

func NewMedicationRepository(prefix string) domainRepo.MedicationRepository {
	return newCollectionRepository[*entity.Medication](prefix, KeyMedications)
}
