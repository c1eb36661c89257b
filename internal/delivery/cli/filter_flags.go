package cli

import (
	"medical-tracker/internal/domain/entity"

	"github.com/spf13/cobra"
)

// addFilterFlags registers the list filters and returns the filter they fill.
func addFilterFlags(cmd *cobra.Command, withStatus, withType bool) *entity.ListFilter {
	filter := &entity.ListFilter{}
	cmd.Flags().StringVar(&filter.Search, "search", "", "case-insensitive text search")
	cmd.Flags().StringVar(&filter.Sort, "sort", "", "sort order, e.g. date-desc or name-asc")
	if withStatus {
		cmd.Flags().StringVar(&filter.Status, "status", "", "only records with this status (all for every status)")
	}
	if withType {
		cmd.Flags().StringVar(&filter.Type, "type", "", "only records of this type (all for every type)")
	}
	return filter
}
