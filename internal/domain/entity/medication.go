package entity

// ActiveStatus is shared by medications and diagnoses
type ActiveStatus string

const (
	StatusActive   ActiveStatus = "active"
	StatusInactive ActiveStatus = "inactive"
)

type Medication struct {
	Record
	Name      string       `json:"name"`
	Dosage    string       `json:"dosage,omitempty"`
	Frequency string       `json:"frequency,omitempty"`
	StartDate string       `json:"startDate,omitempty"`
	EndDate   string       `json:"endDate,omitempty"`
	Status    ActiveStatus `json:"status"`
	Notes     string       `json:"notes,omitempty"`
}

// IsActive checks if medication is currently taken
func (m *Medication) IsActive() bool {
	return m.Status == StatusActive
}
