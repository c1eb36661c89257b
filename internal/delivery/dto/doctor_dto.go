package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address"`
	Hours     string `json:"hours"`
	Contact   string `json:"contact"`
	Notes     string `json:"notes"`
}

type UpdateDoctorRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address"`
	Hours     *string `json:"hours"`
	Contact   *string `json:"contact"`
	Notes     *string `json:"notes"`
}

// Response DTOs

type DoctorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Hours     string    `json:"hours,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
