package cli

import (
	"medical-tracker/internal/converter"
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/validator"

	"github.com/spf13/cobra"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	doctorUsecase      usecase.DoctorUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	doctorUsecase usecase.DoctorUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		doctorUsecase:      doctorUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appointment"},
		Short:   "Manage appointments",
	}
	cmd.AddCommand(
		h.listCmd(),
		h.upcomingCmd(),
		h.getCmd(),
		h.addCmd(),
		h.updateCmd(),
		h.deleteCmd(),
	)
	return cmd
}

func (h *AppointmentHandler) doctorNames(cmd *cobra.Command) converter.NameLookup {
	names, _ := h.doctorUsecase.GetDoctorNames(cmd.Context())
	return names
}

func (h *AppointmentHandler) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your appointments",
		Args:  cobra.NoArgs,
	}
	filter := addFilterFlags(cmd, true, false)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		appointments, err := h.appointmentUsecase.FilterAppointments(cmd.Context(), *filter)
		if err != nil {
			return fail(cmd, err, "Failed to get appointments")
		}
		return successList(cmd, "", converter.AppointmentsToResponses(appointments, h.doctorNames(cmd)), len(appointments))
	}
	return cmd
}

func (h *AppointmentHandler) upcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "List scheduled appointments from now on, soonest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appointments, err := h.appointmentUsecase.GetUpcomingAppointments(cmd.Context())
			if err != nil {
				return fail(cmd, err, "Failed to get upcoming appointments")
			}
			return successList(cmd, "", converter.AppointmentsToResponses(appointments, h.doctorNames(cmd)), len(appointments))
		},
	}
}

func (h *AppointmentHandler) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointment, err := h.appointmentUsecase.GetAppointmentByID(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err, "Failed to get appointment")
			}
			return success(cmd, "", converter.AppointmentToResponse(appointment, h.doctorNames(cmd)))
		},
	}
}

func (h *AppointmentHandler) addCmd() *cobra.Command {
	var req dto.CreateAppointmentRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			appointment, err := h.appointmentUsecase.AddAppointment(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to add appointment")
			}
			return success(cmd, "Appointment added", converter.AppointmentToResponse(appointment, h.doctorNames(cmd)))
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "appointment title")
	cmd.Flags().StringVar(&req.DoctorID, "doctor", "", "doctor id")
	cmd.Flags().StringVar(&req.Date, "date", "", "date and time, YYYY-MM-DDTHH:MM")
	cmd.Flags().StringVar(&req.Duration, "duration", "", "duration in minutes")
	cmd.Flags().StringVar(&req.Type, "type", "", "appointment type")
	cmd.Flags().StringVar(&req.Location, "location", "", "location")
	cmd.Flags().StringVar(&req.Status, "status", "", "scheduled, completed, cancelled or rescheduled")
	cmd.Flags().BoolVar(&req.Reminder, "reminder", false, "remind me")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	return cmd
}

func (h *AppointmentHandler) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpdateAppointmentRequest{
				Title:    changedString(cmd, "title"),
				DoctorID: changedString(cmd, "doctor"),
				Date:     changedString(cmd, "date"),
				Duration: changedString(cmd, "duration"),
				Type:     changedString(cmd, "type"),
				Location: changedString(cmd, "location"),
				Status:   changedString(cmd, "status"),
				Reminder: changedBool(cmd, "reminder"),
				Notes:    changedString(cmd, "notes"),
			}
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			appointment, err := h.appointmentUsecase.UpdateAppointment(cmd.Context(), args[0], &req)
			if err != nil {
				return fail(cmd, err, "Failed to update appointment")
			}
			return success(cmd, "Appointment updated", converter.AppointmentToResponse(appointment, h.doctorNames(cmd)))
		},
	}
	cmd.Flags().String("title", "", "appointment title")
	cmd.Flags().String("doctor", "", "doctor id")
	cmd.Flags().String("date", "", "date and time, YYYY-MM-DDTHH:MM")
	cmd.Flags().String("duration", "", "duration in minutes")
	cmd.Flags().String("type", "", "appointment type")
	cmd.Flags().String("location", "", "location")
	cmd.Flags().String("status", "", "scheduled, completed, cancelled or rescheduled")
	cmd.Flags().Bool("reminder", false, "remind me")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func (h *AppointmentHandler) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.appointmentUsecase.DeleteAppointment(cmd.Context(), args[0]); err != nil {
				return fail(cmd, err, "Failed to delete appointment")
			}
			return success(cmd, "Appointment deleted", nil)
		},
	}
}
