package repository

import (
	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
)

func NewDiagnosisRepository(prefix string) domainRepo.DiagnosisRepository {
	return newCollectionRepository[*entity.Diagnosis](prefix, KeyDiagnoses)
}
