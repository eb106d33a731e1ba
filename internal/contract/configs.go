package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/housescope/schema"
)

// Default values for configuration.
const (
	DefaultMaxPrice    = 2_000_000
	MaxPriceCeiling    = 100_000_000
	DefaultResultLimit = 25
	MaxResultLimit     = 10_000
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a chart session.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath    string
	Format      schema.DataFormat
	Sheet       string // Excel sheet name (empty = first sheet)
	Period      schema.Period
	MaxPrice    int
	Output      schema.OutputMode
	OutputFile  string
	ResultLimit int
	Width       int    // Terminal width override (0 = auto-detect)
	EventsFile  string // Session events (empty = stdin)

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataPathArg string

	// --- Fields from rootCmd.PersistentFlags() ---
	Data       string `mapstructure:"data"`
	Format     string `mapstructure:"format"`
	Sheet      string `mapstructure:"sheet"`
	Period     string `mapstructure:"period"`
	MaxPrice   int    `mapstructure:"max-price"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Limit      int    `mapstructure:"limit"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	// --- Fields from sessionCmd.Flags() ---
	Events string `mapstructure:"events"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate validates the raw input and fills cfg.
// The dataset path is optional here; commands that need it call RequireDataPath.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return resolveDataPath(cfg, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Sheet = strings.TrimSpace(input.Sheet)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.EventsFile = input.Events

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Period Validation ---
	period, err := schema.ParsePeriod(input.Period)
	if err != nil {
		return err
	}
	cfg.Period = period

	// --- 2. Price Validation ---
	if input.MaxPrice < 0 || input.MaxPrice > MaxPriceCeiling {
		return fmt.Errorf("max-price must be between 0 and %d (received %d)", MaxPriceCeiling, input.MaxPrice)
	}
	cfg.MaxPrice = input.MaxPrice

	// --- 3. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 4. Output and Format Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be svg, html", input.Output)
	}

	cfg.Format = schema.DataFormat(strings.ToLower(input.Format))
	if _, ok := schema.ValidDataFormats[cfg.Format]; !ok {
		return fmt.Errorf("invalid format '%s'. must be auto, csv, xlsx, parquet", input.Format)
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	return nil
}

// resolveDataPath picks the positional dataset over the configured one.
func resolveDataPath(cfg *Config, input *ConfigRawInput) error {
	path := input.DataPathArg
	if path == "" {
		path = input.Data
	}
	if path == "" {
		cfg.DataPath = ""
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve dataset path '%s': %w", path, err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("dataset '%s' is not readable: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dataset '%s' is a directory", path)
	}
	cfg.DataPath = absPath
	return nil
}

// RequireDataPath returns an error when no dataset was configured.
func (c *Config) RequireDataPath() error {
	if c.DataPath == "" {
		return fmt.Errorf("no dataset given: pass a path argument, --data or HOUSESCOPE_DATA")
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
