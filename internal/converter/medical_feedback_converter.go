package converter

import (
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
)

// MedicalFeedbackToResponse converts a MedicalFeedback entity, resolving its appointment title
func MedicalFeedbackToResponse(feedback *entity.MedicalFeedback, appointments NameLookup) *dto.MedicalFeedbackResponse {
	if feedback == nil {
		return nil
	}

	return &dto.MedicalFeedbackResponse{
		ID:               feedback.ID,
		AppointmentID:    feedback.AppointmentID,
		AppointmentTitle: appointments.Name(feedback.AppointmentID),
		Notes:            feedback.Notes,
		CreatedAt:        feedback.CreatedAt,
	}
}

func MedicalFeedbackToResponses(feedback []*entity.MedicalFeedback, appointments NameLookup) []dto.MedicalFeedbackResponse {
	responses := make([]dto.MedicalFeedbackResponse, 0, len(feedback))
	for _, item := range feedback {
		if response := MedicalFeedbackToResponse(item, appointments); response != nil {
			responses = append(responses, *response)
		}
	}
	return responses
}
