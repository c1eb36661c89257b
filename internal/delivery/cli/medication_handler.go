package cli

import (
	"medical-tracker/internal/converter"
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/validator"

	"github.com/spf13/cobra"
)

type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
	validator         *validator.CustomValidator
}

func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase, validator *validator.CustomValidator) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
		validator:         validator,
	}
}

func (h *MedicationHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "medications",
		Aliases: []string{"medication"},
		Short:   "Manage medications",
	}
	cmd.AddCommand(
		h.listCmd(),
		h.activeCmd(),
		h.getCmd(),
		h.addCmd(),
		h.updateCmd(),
		h.deleteCmd(),
	)
	return cmd
}

func (h *MedicationHandler) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your medications",
		Args:  cobra.NoArgs,
	}
	filter := addFilterFlags(cmd, true, false)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		medications, err := h.medicationUsecase.FilterMedications(cmd.Context(), *filter)
		if err != nil {
			return fail(cmd, err, "Failed to get medications")
		}
		return successList(cmd, "", converter.MedicationsToResponses(medications), len(medications))
	}
	return cmd
}

func (h *MedicationHandler) activeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List active medications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			medications, err := h.medicationUsecase.GetActiveMedications(cmd.Context())
			if err != nil {
				return fail(cmd, err, "Failed to get active medications")
			}
			return successList(cmd, "", converter.MedicationsToResponses(medications), len(medications))
		},
	}
}

func (h *MedicationHandler) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			medication, err := h.medicationUsecase.GetMedicationByID(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err, "Failed to get medication")
			}
			return success(cmd, "", converter.MedicationToResponse(medication))
		},
	}
}

func (h *MedicationHandler) addCmd() *cobra.Command {
	var req dto.CreateMedicationRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a medication",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			medication, err := h.medicationUsecase.AddMedication(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to add medication")
			}
			return success(cmd, "Medication added", converter.MedicationToResponse(medication))
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "medication name")
	cmd.Flags().StringVar(&req.Dosage, "dosage", "", "dosage")
	cmd.Flags().StringVar(&req.Frequency, "frequency", "", "how often it is taken")
	cmd.Flags().StringVar(&req.StartDate, "start-date", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.EndDate, "end-date", "", "end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Status, "status", "", "active or inactive")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	return cmd
}

func (h *MedicationHandler) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpdateMedicationRequest{
				Name:      changedString(cmd, "name"),
				Dosage:    changedString(cmd, "dosage"),
				Frequency: changedString(cmd, "frequency"),
				StartDate: changedString(cmd, "start-date"),
				EndDate:   changedString(cmd, "end-date"),
				Status:    changedString(cmd, "status"),
				Notes:     changedString(cmd, "notes"),
			}
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			medication, err := h.medicationUsecase.UpdateMedication(cmd.Context(), args[0], &req)
			if err != nil {
				return fail(cmd, err, "Failed to update medication")
			}
			return success(cmd, "Medication updated", converter.MedicationToResponse(medication))
		},
	}
	cmd.Flags().String("name", "", "medication name")
	cmd.Flags().String("dosage", "", "dosage")
	cmd.Flags().String("frequency", "", "how often it is taken")
	cmd.Flags().String("start-date", "", "start date, YYYY-MM-DD")
	cmd.Flags().String("end-date", "", "end date, YYYY-MM-DD")
	cmd.Flags().String("status", "", "active or inactive")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func (h *MedicationHandler) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.medicationUsecase.DeleteMedication(cmd.Context(), args[0]); err != nil {
				return fail(cmd, err, "Failed to delete medication")
			}
			return success(cmd, "Medication deleted", nil)
		},
	}
}
