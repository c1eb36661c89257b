package entity

// Snapshot is the export/import document: the session user and every
// collection filtered to that user. A nil collection means the key was
// missing from the document.
type Snapshot struct {
	User            *SessionUser       `json:"user"`
	Appointments    []*Appointment     `json:"appointments" validate:"required"`
	Doctors         []*Doctor          `json:"doctors" validate:"required"`
	Medications     []*Medication      `json:"medications" validate:"required"`
	Diagnoses       []*Diagnosis       `json:"diagnoses" validate:"required"`
	TestResults     []*TestResult      `json:"testResults" validate:"required"`
	MedicalFeedback []*MedicalFeedback `json:"medicalFeedback" validate:"required"`
}

// MissingCollections returns the JSON names of collections absent from the snapshot.
func (s *Snapshot) MissingCollections() []string {
	var missing []string
	if s.Appointments == nil {
		missing = append(missing, "appointments")
	}
	if s.Doctors == nil {
		missing = append(missing, "doctors")
	}
	if s.Medications == nil {
		missing = append(missing, "medications")
	}
	if s.Diagnoses == nil {
		missing = append(missing, "diagnoses")
	}
	if s.TestResults == nil {
		missing = append(missing, "testResults")
	}
	if s.MedicalFeedback == nil {
		missing = append(missing, "medicalFeedback")
	}
	return missing
}
