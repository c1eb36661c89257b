package cli

import (
	"github.com/spf13/cobra"
)

type Router struct {
	authHandler            *AuthHandler
	appointmentHandler     *AppointmentHandler
	doctorHandler          *DoctorHandler
	medicationHandler      *MedicationHandler
	diagnosisHandler       *DiagnosisHandler
	testResultHandler      *TestResultHandler
	medicalFeedbackHandler *MedicalFeedbackHandler
	dashboardHandler       *DashboardHandler
	dataHandler            *DataHandler
}

func NewRouter(
	authHandler *AuthHandler,
	appointmentHandler *AppointmentHandler,
	doctorHandler *DoctorHandler,
	medicationHandler *MedicationHandler,
	diagnosisHandler *DiagnosisHandler,
	testResultHandler *TestResultHandler,
	medicalFeedbackHandler *MedicalFeedbackHandler,
	dashboardHandler *DashboardHandler,
	dataHandler *DataHandler,
) *Router {
	return &Router{
		authHandler:            authHandler,
		appointmentHandler:     appointmentHandler,
		doctorHandler:          doctorHandler,
		medicationHandler:      medicationHandler,
		diagnosisHandler:       diagnosisHandler,
		testResultHandler:      testResultHandler,
		medicalFeedbackHandler: medicalFeedbackHandler,
		dashboardHandler:       dashboardHandler,
		dataHandler:            dataHandler,
	}
}

// Setup builds a fresh command tree. Flags bind to per-tree state, so build
// a new tree for every invocation.
func (r *Router) Setup() *cobra.Command {
	root := &cobra.Command{
		Use:           "medtracker",
		Short:         "Personal medical record tracker",
		Long:          "Track appointments, doctors, medications, diagnoses, test results and appointment feedback.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Account
	root.AddCommand(r.authHandler.Commands()...)

	// Records
	root.AddCommand(
		r.appointmentHandler.Command(),
		r.doctorHandler.Command(),
		r.medicationHandler.Command(),
		r.diagnosisHandler.Command(),
		r.testResultHandler.Command(),
		r.medicalFeedbackHandler.Command(),
	)

	// Overview and maintenance
	root.AddCommand(
		r.dashboardHandler.Command(),
		r.dataHandler.Command(),
	)

	return root
}
