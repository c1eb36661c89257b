package usecase

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrMalformedInput     = errors.New("invalid data format")
	ErrUserNotFound       = errors.New("user not found")
)

// NotFoundError names the entity that was missing. It matches ErrNotFound
// with errors.Is.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

var (
	ErrAppointmentNotFound     error = &NotFoundError{Entity: "Appointment"}
	ErrDoctorNotFound          error = &NotFoundError{Entity: "Doctor"}
	ErrMedicationNotFound      error = &NotFoundError{Entity: "Medication"}
	ErrDiagnosisNotFound       error = &NotFoundError{Entity: "Diagnosis"}
	ErrTestResultNotFound      error = &NotFoundError{Entity: "Test result"}
	ErrMedicalFeedbackNotFound error = &NotFoundError{Entity: "Feedback"}
)
