package cli

import (
	"medical-tracker/internal/converter"
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/validator"

	"github.com/spf13/cobra"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctors",
		Aliases: []string{"doctor"},
		Short:   "Manage doctors",
	}
	cmd.AddCommand(
		h.listCmd(),
		h.getCmd(),
		h.addCmd(),
		h.updateCmd(),
		h.deleteCmd(),
	)
	return cmd
}

func (h *DoctorHandler) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your doctors",
		Args:  cobra.NoArgs,
	}
	filter := addFilterFlags(cmd, false, false)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		doctors, err := h.doctorUsecase.FilterDoctors(cmd.Context(), *filter)
		if err != nil {
			return fail(cmd, err, "Failed to get doctors")
		}
		return successList(cmd, "", converter.DoctorsToResponses(doctors), len(doctors))
	}
	return cmd
}

func (h *DoctorHandler) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctor, err := h.doctorUsecase.GetDoctorByID(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err, "Failed to get doctor")
			}
			return success(cmd, "", converter.DoctorToResponse(doctor))
		},
	}
}

func (h *DoctorHandler) addCmd() *cobra.Command {
	var req dto.CreateDoctorRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a doctor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			doctor, err := h.doctorUsecase.AddDoctor(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to add doctor")
			}
			return success(cmd, "Doctor added", converter.DoctorToResponse(doctor))
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "doctor name")
	cmd.Flags().StringVar(&req.Specialty, "specialty", "", "specialty")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Address, "address", "", "address")
	cmd.Flags().StringVar(&req.Hours, "hours", "", "office hours")
	cmd.Flags().StringVar(&req.Contact, "contact", "", "preferred contact method")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes")
	return cmd
}

func (h *DoctorHandler) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpdateDoctorRequest{
				Name:      changedString(cmd, "name"),
				Specialty: changedString(cmd, "specialty"),
				Phone:     changedString(cmd, "phone"),
				Email:     changedString(cmd, "email"),
				Address:   changedString(cmd, "address"),
				Hours:     changedString(cmd, "hours"),
				Contact:   changedString(cmd, "contact"),
				Notes:     changedString(cmd, "notes"),
			}
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			doctor, err := h.doctorUsecase.UpdateDoctor(cmd.Context(), args[0], &req)
			if err != nil {
				return fail(cmd, err, "Failed to update doctor")
			}
			return success(cmd, "Doctor updated", converter.DoctorToResponse(doctor))
		},
	}
	cmd.Flags().String("name", "", "doctor name")
	cmd.Flags().String("specialty", "", "specialty")
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("address", "", "address")
	cmd.Flags().String("hours", "", "office hours")
	cmd.Flags().String("contact", "", "preferred contact method")
	cmd.Flags().String("notes", "", "notes")
	return cmd
}

func (h *DoctorHandler) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.doctorUsecase.DeleteDoctor(cmd.Context(), args[0]); err != nil {
				return fail(cmd, err, "Failed to delete doctor")
			}
			return success(cmd, "Doctor deleted", nil)
		},
	}
}
