package converter

import (
	"testing"
	"time"

	"medical-tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNameLookup(t *testing.T) {
	names := NameLookup{"d1": "Dr. Lee"}

	assert.Equal(t, "Dr. Lee", names.Name("d1"))
	assert.Equal(t, "", names.Name("gone"), "dangling reference")
	assert.Equal(t, "", names.Name(""))
	assert.Equal(t, "", NameLookup(nil).Name("d1"))
}

func TestAppointmentsToResponses(t *testing.T) {
	created := time.Now()
	appointments := []*entity.Appointment{
		{Record: entity.Record{ID: "a1", CreatedAt: created}, Title: "Checkup", DoctorID: "d1", Status: entity.AppointmentStatusScheduled},
		nil,
		{Record: entity.Record{ID: "a2"}, Title: "Follow-up", DoctorID: "deleted"},
	}

	responses := AppointmentsToResponses(appointments, NameLookup{"d1": "Dr. Lee"})

	assert.Len(t, responses, 2)
	assert.Equal(t, "Dr. Lee", responses[0].DoctorName)
	assert.Equal(t, "scheduled", responses[0].Status)
	assert.Equal(t, created, responses[0].CreatedAt)
	assert.Equal(t, "deleted", responses[1].DoctorID)
	assert.Empty(t, responses[1].DoctorName)
}

func TestMedicalFeedbackToResponse(t *testing.T) {
	feedback := &entity.MedicalFeedback{Record: entity.Record{ID: "f1"}, AppointmentID: "a1", Notes: "Felt better"}

	response := MedicalFeedbackToResponse(feedback, NameLookup{"a1": "Checkup"})
	assert.Equal(t, "Checkup", response.AppointmentTitle)

	assert.Nil(t, MedicalFeedbackToResponse(nil, nil))
}

func TestUserToResponse(t *testing.T) {
	user := &entity.SessionUser{ID: "u1", Username: "alice", FirstName: "Alice", LastName: "Liddell"}

	response := UserToResponse(user)
	assert.Equal(t, "Alice Liddell", response.FullName)
	assert.Nil(t, UserToResponse(nil))
}
