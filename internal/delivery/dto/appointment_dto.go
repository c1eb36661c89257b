package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	Title    string `json:"title" validate:"required"`
	DoctorID string `json:"doctorId"`
	Date     string `json:"date" validate:"required"` // YYYY-MM-DDTHH:MM
	Duration string `json:"duration"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Status   string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Reminder bool   `json:"reminder"`
	Notes    string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	DoctorID *string `json:"doctorId"`
	Date     *string `json:"date"`
	Duration *string `json:"duration"`
	Type     *string `json:"type"`
	Location *string `json:"location"`
	Status   *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Reminder *bool   `json:"reminder"`
	Notes    *string `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	DoctorID   string    `json:"doctorId,omitempty"`
	DoctorName string    `json:"doctorName,omitempty"`
	Date       string    `json:"date"`
	Duration   string    `json:"duration,omitempty"`
	Type       string    `json:"type,omitempty"`
	Location   string    `json:"location,omitempty"`
	Status     string    `json:"status"`
	Reminder   bool      `json:"reminder"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
