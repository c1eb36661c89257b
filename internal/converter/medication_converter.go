package converter

import (
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
)

func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		ID:        medication.ID,
		Name:      medication.Name,
		Dosage:    medication.Dosage,
		Frequency: medication.Frequency,
		StartDate: medication.StartDate,
		EndDate:   medication.EndDate,
		Status:    string(medication.Status),
		Notes:     medication.Notes,
		CreatedAt: medication.CreatedAt,
	}
}

func MedicationsToResponses(medications []*entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, 0, len(medications))
	for _, medication := range medications {
		if response := MedicationToResponse(medication); response != nil {
			responses = append(responses, *response)
		}
	}
	return responses
}
