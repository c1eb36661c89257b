package converter

import (
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"
)

// TestResultToResponse converts a TestResult entity, resolving its doctor name
func TestResultToResponse(result *entity.TestResult, doctors NameLookup) *dto.TestResultResponse {
	if result == nil {
		return nil
	}

	return &dto.TestResultResponse{
		ID:         result.ID,
		TestName:   result.TestName,
		TestType:   result.TestType,
		TestDate:   result.TestDate,
		DoctorID:   result.DoctorID,
		DoctorName: doctors.Name(result.DoctorID),
		Status:     string(result.Status),
		Results:    result.Results,
		CreatedAt:  result.CreatedAt,
	}
}

func TestResultsToResponses(results []*entity.TestResult, doctors NameLookup) []dto.TestResultResponse {
	responses := make([]dto.TestResultResponse, 0, len(results))
	for _, result := range results {
		if response := TestResultToResponse(result, doctors); response != nil {
			responses = append(responses, *response)
		}
	}
	return responses
}
