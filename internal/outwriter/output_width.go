package outwriter

import (
	"os"

	"github.com/huangsam/housescope/internal/contract"
	"golang.org/x/term"
)

// GetMaxAddressWidth calculates the maximum width for addresses in table output
// based on terminal width and table configuration.
func GetMaxAddressWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + List Date + Price + Floor Area + Year Built + Band, with borders/padding
	baseWidth := 75

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}
