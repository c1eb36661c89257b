package cli

import (
	"medical-tracker/internal/usecase"

	"github.com/spf13/cobra"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summary of your records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := h.dashboardUsecase.GetSummary(cmd.Context())
			if err != nil {
				return fail(cmd, err, "Failed to load dashboard")
			}
			return success(cmd, "", summary)
		},
	}
}
