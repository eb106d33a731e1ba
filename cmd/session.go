package cmd

import (
	"github.com/huangsam/housescope/core"
	"github.com/spf13/cobra"
)

// sessionCmd replays button clicks, slider moves and hovers against the chart.
var sessionCmd = &cobra.Command{
	Use:   "session [dataset]",
	Short: "Drive the chart with interaction events.",
	Long: `Read one event per line and apply it to the chart:

  click <1900|1950|2000>   select a period button and rebuild the chart
  slide <price>            move the max price slider
  hover <index|mark-id>    show the details panel of a mark
  leave                    hide the details panel
  state                    print the current selection

Blank lines and lines starting with '#' are ignored. With --output-file the
chart is written after every rebuild.`,
	Example: `  printf 'click 1950\nslide 750000\nhover 0\n' | housescope session houses.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteSession(rootCtx, cfg)
	},
}
