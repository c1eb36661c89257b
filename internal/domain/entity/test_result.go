package entity

// TestResultStatus represents the outcome of a lab or imaging test
type TestResultStatus string

const (
	TestResultStatusPending  TestResultStatus = "pending"
	TestResultStatusNormal   TestResultStatus = "normal"
	TestResultStatusAbnormal TestResultStatus = "abnormal"
)

type TestResult struct {
	Record
	TestName string           `json:"testName"`
	TestType string           `json:"testType,omitempty"`
	TestDate string           `json:"testDate,omitempty"`
	DoctorID string           `json:"doctorId,omitempty"`
	Status   TestResultStatus `json:"status"`
	Results  string           `json:"results,omitempty"`
}
