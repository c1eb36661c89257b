package dto

import "time"

// Request DTOs

type CreateMedicalFeedbackRequest struct {
	AppointmentID string `json:"appointmentId"`
	Notes         string `json:"notes" validate:"required"`
}

type UpdateMedicalFeedbackRequest struct {
	AppointmentID *string `json:"appointmentId"`
	Notes         *string `json:"notes" validate:"omitempty,min=1"`
}

// Response DTOs

type MedicalFeedbackResponse struct {
	ID               string    `json:"id"`
	AppointmentID    string    `json:"appointmentId,omitempty"`
	AppointmentTitle string    `json:"appointmentTitle,omitempty"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
}
