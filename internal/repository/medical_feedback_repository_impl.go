package repository

import (
	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
)

func NewMedicalFeedbackRepository(prefix string) domainRepo.MedicalFeedbackRepository {
	return newCollectionRepository[*entity.MedicalFeedback](prefix, KeyMedicalFeedback)
}
