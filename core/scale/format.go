package scale

import (
	"math"

	"github.com/dustin/go-humanize"
)

// maxExactInt bounds the values formatted through int64.
const maxExactInt = 1 << 53

// fixedFormatter formats numbers with thousands separators and the given decimals.
func fixedFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return FormatNumber(v, precision)
	}
}

// FormatNumber formats v with comma grouping, e.g. 1234567 -> "1,234,567".
// Trailing zero decimals are dropped. Non-finite values format as "NaN".
func FormatNumber(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	if precision <= 0 {
		r := math.Round(v)
		if math.Abs(r) < maxExactInt {
			return humanize.Comma(int64(r))
		}
		return humanize.Commaf(r)
	}
	return humanize.CommafWithDigits(v, precision)
}
