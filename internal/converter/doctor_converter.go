package converter

import (
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Phone:     doctor.Phone,
		Email:     doctor.Email,
		Address:   doctor.Address,
		Hours:     doctor.Hours,
		Contact:   doctor.Contact,
		Notes:     doctor.Notes,
		CreatedAt: doctor.CreatedAt,
	}
}

func DoctorsToResponses(doctors []*entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		if response := DoctorToResponse(doctor); response != nil {
			responses = append(responses, *response)
		}
	}
	return responses
}
