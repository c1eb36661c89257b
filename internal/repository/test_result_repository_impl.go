package repository

import (
	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
)

func NewTestResultRepository(prefix string) domainRepo.TestResultRepository {
	return newCollectionRepository[*entity.TestResult](prefix, KeyTestResults)
}
