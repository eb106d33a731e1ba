package core

import (
	"sort"

	"github.com/huangsam/housescope/schema"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// SummarizePrices computes descriptive statistics over the finite prices.
func SummarizePrices(houses []schema.House) schema.PriceSummary {
	prices := make([]float64, 0, len(houses))
	for _, h := range houses {
		if isFinite(h.Price) {
			prices = append(prices, h.Price)
		}
	}
	if len(prices) == 0 {
		return schema.PriceSummary{}
	}
	sort.Float64s(prices)

	median, _ := stats.Median(prices)
	return schema.PriceSummary{
		Count:  len(prices),
		Min:    prices[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, prices, nil),
		Median: median,
		Mean:   stat.Mean(prices, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, prices, nil),
		Max:    prices[len(prices)-1],
	}
}
