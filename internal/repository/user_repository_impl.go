package repository

import (
	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
)

func NewUserRepository(prefix string) domainRepo.UserRepository {
	return newCollectionRepository[*entity.User](prefix, KeyUsers)
}
