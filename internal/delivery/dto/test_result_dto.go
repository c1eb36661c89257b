package dto

import "time"

// Request DTOs

type CreateTestResultRequest struct {
	TestName string `json:"testName" validate:"required"`
	TestType string `json:"testType"`
	TestDate string `json:"testDate"` // YYYY-MM-DD
	DoctorID string `json:"doctorId"`
	Status   string `json:"status" validate:"omitempty,oneof=pending normal abnormal"`
	Results  string `json:"results"`
}

type UpdateTestResultRequest struct {
	TestName *string `json:"testName" validate:"omitempty,min=1"`
	TestType *string `json:"testType"`
	TestDate *string `json:"testDate"`
	DoctorID *string `json:"doctorId"`
	Status   *string `json:"status" validate:"omitempty,oneof=pending normal abnormal"`
	Results  *string `json:"results"`
}

// Response DTOs

type TestResultResponse struct {
	ID         string    `json:"id"`
	TestName   string    `json:"testName"`
	TestType   string    `json:"testType,omitempty"`
	TestDate   string    `json:"testDate,omitempty"`
	DoctorID   string    `json:"doctorId,omitempty"`
	DoctorName string    `json:"doctorName,omitempty"`
	Status     string    `json:"status"`
	Results    string    `json:"results,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
