package cmd

import (
	"github.com/huangsam/housescope/core"
	"github.com/spf13/cobra"
)

// plotCmd draws the scatterplot for one period.
var plotCmd = &cobra.Command{
	Use:   "plot [dataset]",
	Short: "Render the price by floor area scatterplot as SVG or HTML.",
	Long: `Render the scatterplot of houses built in the selected period, listed after
2019-01-01 and priced at or below --max-price.

Houses without a numeric floor area or price are kept in the chart but not drawn.
The HTML output adds the period buttons and a details panel shown on hover.`,
	Example: `  housescope plot houses.csv --period 1950 --max-price 900000 --output-file chart.svg
  housescope plot houses.xlsx -p 2000 --output html --output-file chart.html`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecutePlot(rootCtx, cfg)
	},
}
