// Package cmd defines the command-line interface for housescope.
package cmd

import (
	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data", "", "Path to the housing dataset (overridden by the positional argument)")
	rootCmd.PersistentFlags().String("format", string(schema.AutoFormat), "Dataset format: auto or csv or xlsx or parquet")
	rootCmd.PersistentFlags().String("sheet", "", "Excel sheet to read (default: first sheet)")
	rootCmd.PersistentFlags().StringP("period", "p", string(schema.NoPeriod), "Construction period: 1900 or 1950 or 2000")
	rootCmd.PersistentFlags().Int("max-price", contract.DefaultMaxPrice, "Maximum price in CAD")
	rootCmd.PersistentFlags().String("output", string(schema.SVGOut), "Chart format: svg or html")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of houses to list")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of sessionCmd to Viper
	sessionCmd.Flags().String("events", "", "File with one interaction event per line (default: stdin)")
	if err := viper.BindPFlags(sessionCmd.Flags()); err != nil {
		contract.LogFatal("Error binding session flags", err)
	}
}
