package entity

// Severity of a diagnosis
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type Diagnosis struct {
	Record
	Condition     string       `json:"condition"`
	DiagnosisDate string       `json:"diagnosisDate,omitempty"`
	DoctorID      string       `json:"doctorId,omitempty"`
	Status        ActiveStatus `json:"status"`
	Severity      Severity     `json:"severity,omitempty"`
	Notes         string       `json:"notes,omitempty"`
}

// IsActive checks if diagnosis is still active
func (d *Diagnosis) IsActive() bool {
	return d.Status == StatusActive
}
