package cmd

import (
	"github.com/huangsam/housescope/core"
	"github.com/spf13/cobra"
)

// listCmd prints the houses that a chart for the same selection would plot.
var listCmd = &cobra.Command{
	Use:     "list [dataset]",
	Short:   "List the houses matching a period and max price.",
	Long:    `List the filtered houses in dataset order, followed by a summary of their prices.`,
	Example: `  housescope list houses.parquet --period 1900 --limit 50`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteList(rootCtx, cfg)
	},
}
