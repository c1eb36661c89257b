package usecase

import (
	"testing"

	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appointmentTitles(appointments []*entity.Appointment) []string {
	out := make([]string, len(appointments))
	for i, a := range appointments {
		out[i] = a.Title
	}
	return out
}

func TestFilterAppointments(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	lee := env.addDoctor(t, "Dr. Lee")

	inputs := []*dto.CreateAppointmentRequest{
		{Title: "Dental cleaning", Date: "2030-03-01T09:00", Location: "Main St", Status: "scheduled"},
		{Title: "cardio follow-up", Date: "2030-01-01T09:00", DoctorID: lee.ID, Status: "completed"},
		{Title: "Blood draw", Date: "2030-02-01T09:00", Notes: "fasting", Status: "scheduled"},
	}
	for _, req := range inputs {
		_, err := env.appointments.AddAppointment(env.ctx, req)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter entity.ListFilter
		want   []string
	}{
		{"no filter keeps storage order", entity.ListFilter{}, []string{"Dental cleaning", "cardio follow-up", "Blood draw"}},
		{"search by doctor name", entity.ListFilter{Search: "lee"}, []string{"cardio follow-up"}},
		{"search notes case-insensitively", entity.ListFilter{Search: "FAST"}, []string{"Blood draw"}},
		{"search location", entity.ListFilter{Search: "main"}, []string{"Dental cleaning"}},
		{"status", entity.ListFilter{Status: "scheduled"}, []string{"Dental cleaning", "Blood draw"}},
		{"status all", entity.ListFilter{Status: "all"}, []string{"Dental cleaning", "cardio follow-up", "Blood draw"}},
		{"date ascending", entity.ListFilter{Sort: "date-asc"}, []string{"cardio follow-up", "Blood draw", "Dental cleaning"}},
		{"date descending", entity.ListFilter{Sort: "date-desc"}, []string{"Dental cleaning", "Blood draw", "cardio follow-up"}},
		{"title ignores case", entity.ListFilter{Sort: "title-asc"}, []string{"Blood draw", "cardio follow-up", "Dental cleaning"}},
		{"unknown sort", entity.ListFilter{Sort: "colour-asc"}, []string{"Dental cleaning", "cardio follow-up", "Blood draw"}},
		{"combined", entity.ListFilter{Status: "scheduled", Sort: "title-desc"}, []string{"Dental cleaning", "Blood draw"}},
		{"no match", entity.ListFilter{Search: "xyz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.appointments.FilterAppointments(env.ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, appointmentTitles(got))
		})
	}
}

func TestFilterMedications(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	inputs := []*dto.CreateMedicationRequest{
		{Name: "Metformin", Dosage: "500mg", StartDate: "2024-02-01"},
		{Name: "aspirin", Frequency: "daily", StartDate: "2023-06-01", Status: "inactive"},
		{Name: "Lisinopril", Notes: "morning", StartDate: "2024-05-10"},
	}
	for _, req := range inputs {
		_, err := env.medications.AddMedication(env.ctx, req)
		require.NoError(t, err)
	}

	names := func(meds []*entity.Medication) []string {
		out := make([]string, len(meds))
		for i, m := range meds {
			out[i] = m.Name
		}
		return out
	}

	got, err := env.medications.FilterMedications(env.ctx, entity.ListFilter{Sort: "name-desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Metformin", "Lisinopril", "aspirin"}, names(got))

	got, err = env.medications.FilterMedications(env.ctx, entity.ListFilter{Sort: "date-asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"aspirin", "Metformin", "Lisinopril"}, names(got))

	got, err = env.medications.FilterMedications(env.ctx, entity.ListFilter{Search: "500", Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Metformin"}, names(got))

	got, err = env.medications.FilterMedications(env.ctx, entity.ListFilter{Status: "inactive", Search: "daily"})
	require.NoError(t, err)
	assert.Equal(t, []string{"aspirin"}, names(got))
}

func TestFilterDiagnosesAndTestResults(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	kim := env.addDoctor(t, "Dr. Kim")

	_, err := env.diagnoses.AddDiagnosis(env.ctx, &dto.CreateDiagnosisRequest{Condition: "Hypertension", DiagnosisDate: "2022-01-01", DoctorID: kim.ID})
	require.NoError(t, err)
	_, err = env.diagnoses.AddDiagnosis(env.ctx, &dto.CreateDiagnosisRequest{Condition: "asthma", DiagnosisDate: "2020-05-05", Notes: "seasonal"})
	require.NoError(t, err)

	diagnoses, err := env.diagnoses.FilterDiagnoses(env.ctx, entity.ListFilter{Search: "kim"})
	require.NoError(t, err)
	require.Len(t, diagnoses, 1)
	assert.Equal(t, "Hypertension", diagnoses[0].Condition)

	diagnoses, err = env.diagnoses.FilterDiagnoses(env.ctx, entity.ListFilter{Sort: "condition-asc"})
	require.NoError(t, err)
	assert.Equal(t, "asthma", diagnoses[0].Condition)

	diagnoses, err = env.diagnoses.FilterDiagnoses(env.ctx, entity.ListFilter{Sort: "date-desc"})
	require.NoError(t, err)
	assert.Equal(t, "Hypertension", diagnoses[0].Condition)

	_, err = env.testResults.AddTestResult(env.ctx, &dto.CreateTestResultRequest{TestName: "CBC", TestType: "blood", TestDate: "2024-01-01"})
	require.NoError(t, err)
	_, err = env.testResults.AddTestResult(env.ctx, &dto.CreateTestResultRequest{TestName: "Chest X-ray", TestType: "imaging", DoctorID: kim.ID, Results: "clear"})
	require.NoError(t, err)

	results, err := env.testResults.FilterTestResults(env.ctx, entity.ListFilter{Type: "imaging"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Chest X-ray", results[0].TestName)

	results, err = env.testResults.FilterTestResults(env.ctx, entity.ListFilter{Search: "CLEAR", Type: "all"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = env.testResults.FilterTestResults(env.ctx, entity.ListFilter{Search: "kim", Type: "blood"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFilterDoctorsAndFeedback(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	env.addDoctor(t, "Dr. Zed")
	_, err := env.doctors.AddDoctor(env.ctx, &dto.CreateDoctorRequest{Name: "Dr. Adams", Specialty: "Dermatology"})
	require.NoError(t, err)

	doctors, err := env.doctors.FilterDoctors(env.ctx, entity.ListFilter{Sort: "name-asc"})
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "Dr. Adams", doctors[0].Name)

	doctors, err = env.doctors.FilterDoctors(env.ctx, entity.ListFilter{Search: "derm"})
	require.NoError(t, err)
	require.Len(t, doctors, 1)

	appointment, err := env.appointments.AddAppointment(env.ctx, &dto.CreateAppointmentRequest{Title: "Skin check", Date: "2030-01-01"})
	require.NoError(t, err)
	_, err = env.feedback.AddMedicalFeedback(env.ctx, &dto.CreateMedicalFeedbackRequest{AppointmentID: appointment.ID, Notes: "Use cream"})
	require.NoError(t, err)
	_, err = env.feedback.AddMedicalFeedback(env.ctx, &dto.CreateMedicalFeedbackRequest{Notes: "General note"})
	require.NoError(t, err)

	feedback, err := env.feedback.FilterMedicalFeedback(env.ctx, entity.ListFilter{Search: "skin"})
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, "Use cream", feedback[0].Notes)

	_, err = env.feedback.FilterMedicalFeedback(env.ctx, entity.ListFilter{})
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(env.ctx))
	feedback, err = env.feedback.FilterMedicalFeedback(env.ctx, entity.ListFilter{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, feedback)
}
