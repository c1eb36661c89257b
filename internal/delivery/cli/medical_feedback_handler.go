package cli

import (
	"medical-tracker/internal/converter"
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/validator"

	"github.com/spf13/cobra"
)

type MedicalFeedbackHandler struct {
	feedbackUsecase    usecase.MedicalFeedbackUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewMedicalFeedbackHandler(
	feedbackUsecase usecase.MedicalFeedbackUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
) *MedicalFeedbackHandler {
	return &MedicalFeedbackHandler{
		feedbackUsecase:    feedbackUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *MedicalFeedbackHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Manage notes from your appointments",
	}
	cmd.AddCommand(
		h.listCmd(),
		h.recentCmd(),
		h.getCmd(),
		h.addCmd(),
		h.updateCmd(),
		h.deleteCmd(),
	)
	return cmd
}

func (h *MedicalFeedbackHandler) appointmentTitles(cmd *cobra.Command) converter.NameLookup {
	titles, _ := h.appointmentUsecase.GetAppointmentTitles(cmd.Context())
	return titles
}

func (h *MedicalFeedbackHandler) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your feedback",
		Args:  cobra.NoArgs,
	}
	filter := addFilterFlags(cmd, false, false)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		feedback, err := h.feedbackUsecase.FilterMedicalFeedback(cmd.Context(), *filter)
		if err != nil {
			return fail(cmd, err, "Failed to get feedback")
		}
		return successList(cmd, "", converter.MedicalFeedbackToResponses(feedback, h.appointmentTitles(cmd)), len(feedback))
	}
	return cmd
}

func (h *MedicalFeedbackHandler) recentCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent feedback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feedback, err := h.feedbackUsecase.GetRecentMedicalFeedback(cmd.Context(), limit)
			if err != nil {
				return fail(cmd, err, "Failed to get recent feedback")
			}
			return successList(cmd, "", converter.MedicalFeedbackToResponses(feedback, h.appointmentTitles(cmd)), len(feedback))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "number of entries")
	return cmd
}

func (h *MedicalFeedbackHandler) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one feedback entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feedback, err := h.feedbackUsecase.GetMedicalFeedbackByID(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err, "Failed to get feedback")
			}
			return success(cmd, "", converter.MedicalFeedbackToResponse(feedback, h.appointmentTitles(cmd)))
		},
	}
}

func (h *MedicalFeedbackHandler) addCmd() *cobra.Command {
	var req dto.CreateMedicalFeedbackRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add feedback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			feedback, err := h.feedbackUsecase.AddMedicalFeedback(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to add feedback")
			}
			return success(cmd, "Feedback added", converter.MedicalFeedbackToResponse(feedback, h.appointmentTitles(cmd)))
		},
	}
	cmd.Flags().StringVar(&req.AppointmentID, "appointment", "", "appointment id")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "what the doctor said")
	return cmd
}

func (h *MedicalFeedbackHandler) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a feedback entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpdateMedicalFeedbackRequest{
				AppointmentID: changedString(cmd, "appointment"),
				Notes:         changedString(cmd, "notes"),
			}
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			feedback, err := h.feedbackUsecase.UpdateMedicalFeedback(cmd.Context(), args[0], &req)
			if err != nil {
				return fail(cmd, err, "Failed to update feedback")
			}
			return success(cmd, "Feedback updated", converter.MedicalFeedbackToResponse(feedback, h.appointmentTitles(cmd)))
		},
	}
	cmd.Flags().String("appointment", "", "appointment id")
	cmd.Flags().String("notes", "", "what the doctor said")
	return cmd
}

func (h *MedicalFeedbackHandler) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a feedback entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.feedbackUsecase.DeleteMedicalFeedback(cmd.Context(), args[0]); err != nil {
				return fail(cmd, err, "Failed to delete feedback")
			}
			return success(cmd, "Feedback deleted", nil)
		},
	}
}
