package usecase

import (
	"context"

	"medical-tracker/internal/converter"
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// dashboardListSize caps each list on the dashboard
const dashboardListSize = 5

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log          *logrus.Logger
	auth         AuthUsecase
	appointments AppointmentUsecase
	doctors      DoctorUsecase
	medications  MedicationUsecase
	diagnoses    DiagnosisUsecase
}

func NewDashboardUsecase(
	log *logrus.Logger,
	auth AuthUsecase,
	appointments AppointmentUsecase,
	doctors DoctorUsecase,
	medications MedicationUsecase,
	diagnoses DiagnosisUsecase,
) DashboardUsecase {
	return &dashboardUsecase{
		log:          log,
		auth:         auth,
		appointments: appointments,
		doctors:      doctors,
		medications:  medications,
		diagnoses:    diagnoses,
	}
}

func (u *dashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	user, err := u.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := u.appointments.GetUpcomingAppointments(ctx)
	if err != nil {
		u.log.Warnf("Failed to get upcoming appointments: %+v", err)
		return nil, err
	}

	doctors, err := u.doctors.GetUserDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to get doctors: %+v", err)
		return nil, err
	}

	medications, err := u.medications.GetActiveMedications(ctx)
	if err != nil {
		u.log.Warnf("Failed to get active medications: %+v", err)
		return nil, err
	}

	diagnoses, err := u.diagnoses.GetActiveDiagnoses(ctx)
	if err != nil {
		u.log.Warnf("Failed to get active diagnoses: %+v", err)
		return nil, err
	}

	doctorNames := make(converter.NameLookup, len(doctors))
	for _, doctor := range doctors {
		doctorNames[doctor.ID] = doctor.Name
	}

	return &dto.DashboardResponse{
		User: converter.UserToResponse(user),
		Counts: dto.DashboardCounts{
			UpcomingAppointments: len(upcoming),
			ActiveMedications:    len(medications),
			ActiveDiagnoses:      len(diagnoses),
			Doctors:              len(doctors),
		},
		UpcomingAppointments: converter.AppointmentsToResponses(head(upcoming), doctorNames),
		Doctors:              converter.DoctorsToResponses(head(doctors)),
		ActiveMedications:    converter.MedicationsToResponses(head(medications)),
		ActiveDiagnoses:      converter.DiagnosesToResponses(head(diagnoses), doctorNames),
	}, nil
}

func head[T entity.Entity](records []T) []T {
	if len(records) > dashboardListSize {
		return records[:dashboardListSize]
	}
	return records
}
