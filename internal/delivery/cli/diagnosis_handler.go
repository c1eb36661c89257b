package cli

import (
	"medical-tracker/internal/converter"
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/validator"

	"github.com/spf13/cobra"
)

type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	doctorUsecase    usecase.DoctorUsecase
	validator        *validator.CustomValidator
}

func NewDiagnosisHandler(
	diagnosisUsecase usecase.DiagnosisUsecase,
	doctorUsecase usecase.DoctorUsecase,
	validator *validator.CustomValidator,
) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		doctorUsecase:    doctorUsecase,
		validator:        validator,
	}
}

func (h *DiagnosisHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "diagnoses",
		Aliases: []string{"diagnosis"},
		Short:   "Manage diagnoses",
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

func (h *DiagnosisHandler) doctorNames(cmd *cobra.Command) converter.NameLookup {
	names, _ := h.doctorUsecase.GetDoctorNames(cmd.Context())
	return names
}

func (h *DiagnosisHandler) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your diagnoses",
		Args:  cobra.NoArgs,
	}
	filter := addFilterFlags(cmd, true, false)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		diagnoses, err := h.diagnosisUsecase.FilterDiagnoses(cmd.Context(), *filter)
		if err != nil {
			return fail(cmd, err, "Failed to get diagnoses")
		}
		return successList(cmd, "", converter.DiagnosesToResponses(diagnoses, h.doctorNames(cmd)), len(diagnoses))
	}
	return cmd
}

func (h *DiagnosisHandler) activeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List active diagnoses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnoses, err := h.diagnosisUsecase.GetActiveDiagnoses(cmd.Context())
			if err != nil {
				return fail(cmd, err, "Failed to get active diagnoses")
			}
			return successList(cmd, "", converter.DiagnosesToResponses(diagnoses, h.doctorNames(cmd)), len(diagnoses))
		},
	}
}

func (h *DiagnosisHandler) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one diagnosis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnosis, err := h.diagnosisUsecase.GetDiagnosisByID(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err, "Failed to get diagnosis")
			}
			return success(cmd, "", converter.DiagnosisToResponse(diagnosis, h.doctorNames(cmd)))
		},
	}
}

func (h *DiagnosisHandler) addCmd() *cobra.Command {
	var req dto.CreateDiagnosisRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a diagnosis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			diagnosis, err := h.diagnosisUsecase.AddDiagnosis(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to add diagnosis")
			}
			return success(cmd, "Diagnosis added", converter.DiagnosisToResponse(diagnosis, h.doctorNames(cmd)))
		},
	}
	cmd.Flags().StringVar(&req.Condition, "condition", "", "diagnosed condition")
	cmd.Flags().StringVar(&req.DiagnosisDate, "date", "", "diagnosis date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.DoctorID, "doctor", "", "doctor id")
	cmd.Flags().StringVar(&req.Status, "status", "", "active or inactive")
	cmd.Flags().StringVar(&req.Severity, "severity", "", "mild, moderate or severe")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	return cmd
}

func (h *DiagnosisHandler) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a diagnosis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpdateDiagnosisRequest{
				Condition:     changedString(cmd, "condition"),
				DiagnosisDate: changedString(cmd, "date"),
				DoctorID:      changedString(cmd, "doctor"),
				Status:        changedString(cmd, "status"),
				Severity:      changedString(cmd, "severity"),
				Notes:         changedString(cmd, "notes"),
			}
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			diagnosis, err := h.diagnosisUsecase.UpdateDiagnosis(cmd.Context(), args[0], &req)
			if err != nil {
				return fail(cmd, err, "Failed to update diagnosis")
			}
			return success(cmd, "Diagnosis updated", converter.DiagnosisToResponse(diagnosis, h.doctorNames(cmd)))
		},
	}
	cmd.Flags().String("condition", "", "diagnosed condition")
	cmd.Flags().String("date", "", "diagnosis date, YYYY-MM-DD")
	cmd.Flags().String("doctor", "", "doctor id")
	cmd.Flags().String("status", "", "active or inactive")
	cmd.Flags().String("severity", "", "mild, moderate or severe")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func (h *DiagnosisHandler) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a diagnosis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.diagnosisUsecase.DeleteDiagnosis(cmd.Context(), args[0]); err != nil {
				return fail(cmd, err, "Failed to delete diagnosis")
			}
			return success(cmd, "Diagnosis deleted", nil)
		},
	}
}
