package cli

import (
	"medical-tracker/internal/converter"
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/validator"

	"github.com/spf13/cobra"
)

type TestResultHandler struct {
	testResultUsecase usecase.TestResultUsecase
	doctorUsecase     usecase.DoctorUsecase
	validator         *validator.CustomValidator
}

func NewTestResultHandler(
	testResultUsecase usecase.TestResultUsecase,
	doctorUsecase usecase.DoctorUsecase,
	validator *validator.CustomValidator,
) *TestResultHandler {
	return &TestResultHandler{
		testResultUsecase: testResultUsecase,
		doctorUsecase:     doctorUsecase,
		validator:         validator,
	}
}

func (h *TestResultHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "test-results",
		Aliases: []string{"test-result", "tests"},
		Short:   "Manage test results",
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

func (h *TestResultHandler) doctorNames(cmd *cobra.Command) converter.NameLookup {
	names, _ := h.doctorUsecase.GetDoctorNames(cmd.Context())
	return names
}

func (h *TestResultHandler) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your test results",
		Args:  cobra.NoArgs,
	}
	filter := addFilterFlags(cmd, true, true)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		results, err := h.testResultUsecase.FilterTestResults(cmd.Context(), *filter)
		if err != nil {
			return fail(cmd, err, "Failed to get test results")
		}
		return successList(cmd, "", converter.TestResultsToResponses(results, h.doctorNames(cmd)), len(results))
	}
	return cmd
}

func (h *TestResultHandler) recentCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent test results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := h.testResultUsecase.GetRecentTestResults(cmd.Context(), limit)
			if err != nil {
				return fail(cmd, err, "Failed to get recent test results")
			}
			return successList(cmd, "", converter.TestResultsToResponses(results, h.doctorNames(cmd)), len(results))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "number of results")
	return cmd
}

func (h *TestResultHandler) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one test result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := h.testResultUsecase.GetTestResultByID(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err, "Failed to get test result")
			}
			return success(cmd, "", converter.TestResultToResponse(result, h.doctorNames(cmd)))
		},
	}
}

func (h *TestResultHandler) addCmd() *cobra.Command {
	var req dto.CreateTestResultRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a test result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			result, err := h.testResultUsecase.AddTestResult(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to add test result")
			}
			return success(cmd, "Test result added", converter.TestResultToResponse(result, h.doctorNames(cmd)))
		},
	}
	cmd.Flags().StringVar(&req.TestName, "name", "", "test name")
	cmd.Flags().StringVar(&req.TestType, "type", "", "test type, e.g. blood or imaging")
	cmd.Flags().StringVar(&req.TestDate, "date", "", "test date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.DoctorID, "doctor", "", "doctor id")
	cmd.Flags().StringVar(&req.Status, "status", "", "pending, normal or abnormal")
	cmd.Flags().StringVar(&req.Results, "results", "", "result details")
	return cmd
}

func (h *TestResultHandler) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a test result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpdateTestResultRequest{
				TestName: changedString(cmd, "name"),
				TestType: changedString(cmd, "type"),
				TestDate: changedString(cmd, "date"),
				DoctorID: changedString(cmd, "doctor"),
				Status:   changedString(cmd, "status"),
				Results:  changedString(cmd, "results"),
			}
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			result, err := h.testResultUsecase.UpdateTestResult(cmd.Context(), args[0], &req)
			if err != nil {
				return fail(cmd, err, "Failed to update test result")
			}
			return success(cmd, "Test result updated", converter.TestResultToResponse(result, h.doctorNames(cmd)))
		},
	}
	cmd.Flags().String("name", "", "test name")
	cmd.Flags().String("type", "", "test type, e.g. blood or imaging")
	cmd.Flags().String("date", "", "test date, YYYY-MM-DD")
	cmd.Flags().String("doctor", "", "doctor id")
	cmd.Flags().String("status", "", "pending, normal or abnormal")
	cmd.Flags().String("results", "", "result details")
	return cmd
}

func (h *TestResultHandler) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a test result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.testResultUsecase.DeleteTestResult(cmd.Context(), args[0]); err != nil {
				return fail(cmd, err, "Failed to delete test result")
			}
			return success(cmd, "Test result deleted", nil)
		},
	}
}
