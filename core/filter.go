package core

import (
	"strings"
	"time"

	"github.com/huangsam/housescope/schema"
)

// listDateLayouts are the calendar layouts accepted for ListDate, tried in order.
var listDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"2006/01/02",
	"01/02/2006",
}

// Filter returns the houses matching params, in their original order.
// The result is never nil and the input is never modified.
func Filter(houses []schema.House, params schema.FilterParams) []schema.House {
	filtered := make([]schema.House, 0, len(houses))
	for _, h := range houses {
		if Matches(h, params) {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// Matches reports whether a single house passes every filter predicate.
// NaN years and prices fail their comparisons.
func Matches(h schema.House, params schema.FilterParams) bool {
	return h.YearBuilt >= float64(params.StartYear) &&
		h.YearBuilt < float64(params.EndYear) &&
		h.Price <= float64(params.MaxPrice) &&
		ListedAfterCutoff(h.ListDate)
}

// ListedAfterCutoff reports whether listDate parses and falls strictly after
// schema.ListDateCutoff.
func ListedAfterCutoff(listDate string) bool {
	t, ok := ParseListDate(listDate)
	return ok && t.After(schema.ListDateCutoff)
}

// ParseListDate parses a listing date in UTC.
func ParseListDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range listDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
