package entity

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// Appointment is a visit, optionally with a doctor.
// DoctorID is a soft reference and may point at a deleted doctor.
type Appointment struct {
	Record
	Title    string            `json:"title"`
	DoctorID string            `json:"doctorId,omitempty"`
	Date     string            `json:"date"`
	Duration string            `json:"duration,omitempty"`
	Type     string            `json:"type,omitempty"`
	Location string            `json:"location,omitempty"`
	Status   AppointmentStatus `json:"status"`
	Reminder bool              `json:"reminder"`
	Notes    string            `json:"notes,omitempty"`
}

// IsScheduled checks if appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}
