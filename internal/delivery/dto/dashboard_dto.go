package dto

type DashboardCounts struct {
	UpcomingAppointments int `json:"upcomingAppointments"`
	ActiveMedications    int `json:"activeMedications"`
	ActiveDiagnoses      int `json:"activeDiagnoses"`
	Doctors              int `json:"doctors"`
}

// DashboardResponse is the landing summary: counts plus the first few
// entries of each list.
type DashboardResponse struct {
	User                 *UserResponse         `json:"user"`
	Counts               DashboardCounts       `json:"counts"`
	UpcomingAppointments []AppointmentResponse `json:"upcomingAppointments"`
	Doctors              []DoctorResponse      `json:"doctors"`
	ActiveMedications    []MedicationResponse  `json:"activeMedications"`
	ActiveDiagnoses      []DiagnosisResponse   `json:"activeDiagnoses"`
}
