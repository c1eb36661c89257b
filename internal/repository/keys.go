package repository

// Collection names under the key prefix
const (
	KeyInitialized     = "initialized"
	KeyUsers           = "users"
	KeyAppointments    = "appointments"
	KeyDoctors         = "doctors"
	KeyMedications     = "medications"
	KeyDiagnoses       = "diagnoses"
	KeyTestResults     = "testResults"
	KeyMedicalFeedback = "medicalFeedback"
	KeyCurrentUser     = "currentUser"
)

// DefaultKeyPrefix namespaces every key the tracker writes.
const DefaultKeyPrefix = "medicalTracker_"
