package contract

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Price band label constants, relative to the price threshold.
const (
	HighValue     = "High"     // High value
	ModerateValue = "Moderate" // Moderate value
	LowValue      = "Low"      // Low value
)

// Color variables for console output.
var (
	HighColor     = color.New(color.FgMagenta, color.Bold) // HighColor marks prices close to the threshold.
	ModerateColor = color.New(color.FgYellow)              // ModerateColor marks prices in the middle band.
	LowColor      = color.New(color.FgCyan)                // LowColor marks the cheapest band.
	SelectedColor = color.New(color.FgBlue, color.Bold)    // SelectedColor highlights the active period button.
	MutedColor    = color.New(color.Faint)                 // MutedColor dims inactive buttons.
)

// GetPlainLabel returns a plain text label for a price relative to maxPrice.
// Prices at 75% of the threshold or more are High, at 50% or more Moderate.
func GetPlainLabel(price, maxPrice float64) string {
	if maxPrice <= 0 || math.IsNaN(price) {
		return HighValue
	}
	switch ratio := price / maxPrice; {
	case ratio >= 0.75:
		return HighValue
	case ratio >= 0.5:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(price, maxPrice float64) string {
	text := GetPlainLabel(price, maxPrice)

	switch text {
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// GetButtonLabel renders a period button, highlighted when selected.
func GetButtonLabel(name string, selected bool) string {
	if selected {
		return SelectedColor.Sprintf("[%s]", name)
	}
	return MutedColor.Sprintf(" %s ", name)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
