package repository

import (
	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
)

func NewDoctorRepository(prefix string) domainRepo.DoctorRepository {
	return newCollectionRepository[*entity.Doctor](prefix, KeyDoctors)
}
