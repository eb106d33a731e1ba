package cmd

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/huangsam/housescope/schema"
	"github.com/spf13/cobra"
)

// versionCmd shows the build details plus what this binary can read and plot.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and capabilities of housescope.",
	Long: `Display build information and the chart capabilities of this binary.

Shows:
- Release version, commit and build timestamp
- Go runtime version
- Dataset formats the loader accepts
- Construction periods and output modes the chart supports

Use --short to print only the release version.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		short, _ := cmd.Flags().GetBool("short")
		return writeVersion(cmd.OutOrStdout(), short)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print only the release version")
}

func writeVersion(w io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, version)
		return err
	}
	periods := make([]string, 0, len(schema.AllPeriods))
	for _, p := range schema.AllPeriods {
		periods = append(periods, p.DisplayName())
	}
	var sb strings.Builder
	sb.WriteString("housescope CLI\n")
	fmt.Fprintf(&sb, "  Version:  %s\n", version)
	fmt.Fprintf(&sb, "  Commit:   %s\n", commit)
	fmt.Fprintf(&sb, "  Built:    %s\n", date)
	fmt.Fprintf(&sb, "  Runtime:  %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&sb, "  Formats:  %s, %s, %s\n", schema.CSVFormat, schema.XLSXFormat, schema.ParquetFormat)
	fmt.Fprintf(&sb, "  Periods:  %s\n", strings.Join(periods, ", "))
	fmt.Fprintf(&sb, "  Outputs:  %s, %s\n", schema.SVGOut, schema.HTMLOut)
	fmt.Fprintf(&sb, "  Chart:    %dx%d, listed after %s\n", schema.TotalWidth, schema.TotalHeight, schema.ListDateCutoff.Format("2006-01-02"))
	_, err := io.WriteString(w, sb.String())
	return err
}
