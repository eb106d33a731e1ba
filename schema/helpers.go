package schema

import (
	"fmt"
	"strings"
)

// Bounds returns the [start, end) year-built range for a period.
func (p Period) Bounds() (start int, end int, ok bool) {
	switch p {
	case Period1900:
		return 1900, 1950, true
	case Period1950:
		return 1950, 2000, true
	case Period2000:
		return 2000, 2050, true
	default:
		return 0, 0, false
	}
}

// ButtonID returns the identifier of the button that selects the period.
func (p Period) ButtonID() string {
	return "button-" + string(p)
}

// DisplayName returns the label shown on the period button, e.g. "1900-1950".
func (p Period) DisplayName() string {
	start, end, ok := p.Bounds()
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d-%d", start, end)
}

// ParsePeriod parses a period from user input.
// It accepts the start year ("1950"), the button ID ("button-1950"),
// the full band ("1950-2000") and "none" or an empty string.
func ParsePeriod(s string) (Period, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "button-")
	if v == "" || v == string(NoPeriod) {
		return NoPeriod, nil
	}
	for _, p := range AllPeriods {
		if v == string(p) || v == p.DisplayName() {
			return p, nil
		}
	}
	return NoPeriod, fmt.Errorf("invalid period '%s'. must be 1900, 1950, 2000 or none", s)
}
