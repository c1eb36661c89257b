package repository

import (
	"medical-tracker/internal/domain/entity"
	domainRepo "medical-tracker/internal/domain/repository"
)

func NewAppointmentRepository(prefix string) domainRepo.AppointmentRepository {
	return newCollectionRepository[*entity.Appointment](prefix, KeyAppointments)
}
