package dto

import "time"

// Request DTOs

type CreateDiagnosisRequest struct {
	Condition     string `json:"condition" validate:"required"`
	DiagnosisDate string `json:"diagnosisDate"` // YYYY-MM-DD
	DoctorID      string `json:"doctorId"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
	Severity      string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
	Notes         string `json:"notes"`
}

type UpdateDiagnosisRequest struct {
	Condition     *string `json:"condition" validate:"omitempty,min=1"`
	DiagnosisDate *string `json:"diagnosisDate"`
	DoctorID      *string `json:"doctorId"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Severity      *string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
	Notes         *string `json:"notes"`
}

// Response DTOs

type DiagnosisResponse struct {
	ID            string    `json:"id"`
	Condition     string    `json:"condition"`
	DiagnosisDate string    `json:"diagnosisDate,omitempty"`
	DoctorID      string    `json:"doctorId,omitempty"`
	DoctorName    string    `json:"doctorName,omitempty"`
	Status        string    `json:"status"`
	Severity      string    `json:"severity,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
