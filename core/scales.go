package core

import (
	"math"

	"github.com/huangsam/housescope/core/scale"
	"github.com/huangsam/housescope/schema"
	"github.com/montanaflynn/stats"
)

// Scales holds the position scales of one chart build.
type Scales struct {
	X scale.Linear // TotalFloorArea to horizontal offset
	Y scale.Linear // Price to vertical offset, inverted so larger prices sit higher
}

// BuildScales derives the chart scales from the filtered houses.
// The x domain spans the floor areas; the y domain runs from the cheapest
// price up to maxPrice. Without any finite value a domain collapses to
// [0, 0] for x and [maxPrice, maxPrice] for y.
func BuildScales(houses []schema.House, maxPrice int) Scales {
	areas := make(stats.Float64Data, 0, len(houses))
	prices := make(stats.Float64Data, 0, len(houses))
	for _, h := range houses {
		if isFinite(h.TotalFloorArea) {
			areas = append(areas, h.TotalFloorArea)
		}
		if isFinite(h.Price) {
			prices = append(prices, h.Price)
		}
	}

	x0, x1 := 0.0, 0.0
	if len(areas) > 0 {
		// Min and Max only fail on empty input.
		x0, _ = areas.Min()
		x1, _ = areas.Max()
	}

	top := float64(maxPrice)
	y0 := top
	if len(prices) > 0 {
		y0, _ = prices.Min()
	}

	return Scales{
		X: scale.NewLinear(x0, x1, 0, schema.PlotWidth),
		Y: scale.NewLinear(y0, top, schema.PlotHeight, 0),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
