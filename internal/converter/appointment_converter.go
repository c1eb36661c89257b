package converter

import (
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity, resolving its doctor name
func AppointmentToResponse(appointment *entity.Appointment, doctors NameLookup) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:         appointment.ID,
		Title:      appointment.Title,
		DoctorID:   appointment.DoctorID,
		DoctorName: doctors.Name(appointment.DoctorID),
		Date:       appointment.Date,
		Duration:   appointment.Duration,
		Type:       appointment.Type,
		Location:   appointment.Location,
		Status:     string(appointment.Status),
		Reminder:   appointment.Reminder,
		Notes:      appointment.Notes,
		CreatedAt:  appointment.CreatedAt,
	}
}

func AppointmentsToResponses(appointments []*entity.Appointment, doctors NameLookup) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		if response := AppointmentToResponse(appointment, doctors); response != nil {
			responses = append(responses, *response)
		}
	}
	return responses
}
