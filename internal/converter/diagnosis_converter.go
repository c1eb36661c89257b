package converter

import (
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
)

// DiagnosisToResponse converts a Diagnosis entity, resolving its doctor name
func DiagnosisToResponse(diagnosis *entity.Diagnosis, doctors NameLookup) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	return &dto.DiagnosisResponse{
		ID:            diagnosis.ID,
		Condition:     diagnosis.Condition,
		DiagnosisDate: diagnosis.DiagnosisDate,
		DoctorID:      diagnosis.DoctorID,
		DoctorName:    doctors.Name(diagnosis.DoctorID),
		Status:        string(diagnosis.Status),
		Severity:      string(diagnosis.Severity),
		Notes:         diagnosis.Notes,
		CreatedAt:     diagnosis.CreatedAt,
	}
}

func DiagnosesToResponses(diagnoses []*entity.Diagnosis, doctors NameLookup) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, 0, len(diagnoses))
	for _, diagnosis := range diagnoses {
		if response := DiagnosisToResponse(diagnosis, doctors); response != nil {
			responses = append(responses, *response)
		}
	}
	return responses
}
