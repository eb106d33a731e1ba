package core

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/huangsam/housescope/schema"
)

// Normalize converts raw records into houses, one for one and in order.
// YearBuilt, Price and TotalFloorArea are parsed with ParseIntPrefix; every
// other field is copied verbatim. Missing fields read as empty strings.
func Normalize(raws []schema.RawRecord) []schema.House {
	houses := make([]schema.House, len(raws))
	for i, raw := range raws {
		houses[i] = NormalizeRecord(raw)
	}
	return houses
}

// NormalizeRecord converts a single raw record.
func NormalizeRecord(raw schema.RawRecord) schema.House {
	return schema.House{
		Address:        raw[schema.FieldAddress],
		ListDate:       raw[schema.FieldListDate],
		Price:          ParseIntPrefix(raw[schema.FieldPrice]),
		DaysOnMarket:   raw[schema.FieldDaysOnMarket],
		TotalFloorArea: ParseIntPrefix(raw[schema.FieldTotalFloorArea]),
		YearBuilt:      ParseIntPrefix(raw[schema.FieldYearBuilt]),
		Age:            raw[schema.FieldAge],
		LotSize:        raw[schema.FieldLotSize],
	}
}

// ParseIntPrefix parses the leading integer of s.
// Leading whitespace is skipped and an optional sign is accepted, then the
// longest run of decimal digits is used. Anything after the digits is
// ignored, so "120.5" is 120 and "85 sqm" is 85. NaN is returned when no
// digit follows the sign.
func ParseIntPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := 1.0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// Only reachable for digit runs past the float64 range.
		return math.NaN()
	}
	return sign * v
}
