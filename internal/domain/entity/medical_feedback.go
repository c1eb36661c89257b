package entity

// MedicalFeedback is a free-form note, optionally tied to an appointment.
// AppointmentID is a soft reference.
type MedicalFeedback struct {
	Record
	AppointmentID string `json:"appointmentId,omitempty"`
	Notes         string `json:"notes"`
}
