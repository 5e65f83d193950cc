package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empiricalab/empirical/internal/algorithms"
)

// ListResult is the json payload of the list command.
type ListResult struct {
	Functions []string `json:"functions"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List the functions available to benchmark",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			names := algorithms.Names()
			if formatter.Format == "json" {
				return formatter.Success(ListResult{Functions: names})
			}
			for _, name := range names {
				fmt.Fprintln(formatter.Writer, name)
			}
			return nil
		},
	}
}
