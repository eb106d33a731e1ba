package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeHouseTable generates and writes the human-readable table.
func writeHouseTable(houses []schema.House, summary schema.PriceSummary, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Address", "List Date", "Price", "Floor Area", "Year Built", "Band"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	limit := min(cfg.ResultLimit, len(houses))
	if cfg.ResultLimit <= 0 {
		limit = len(houses)
	}
	addressWidth := GetMaxAddressWidth(cfg)

	data := make([][]string, 0, limit)
	for i, h := range houses[:limit] {
		band := contract.GetPlainLabel(h.Price, float64(cfg.MaxPrice))
		if cfg.UseColors {
			band = contract.GetColorLabel(h.Price, float64(cfg.MaxPrice))
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(h.Address, addressWidth),
			h.ListDate,
			"$" + formatPrice(h.Price),
			formatPlain(h.TotalFloorArea),
			formatPlain(h.YearBuilt),
			band,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d of %d houses built %s (max price: $%s)\n",
		limit, len(houses), cfg.Period.DisplayName(), formatPrice(float64(cfg.MaxPrice))); err != nil {
		return err
	}
	if summary.Count > 0 {
		if _, err := fmt.Fprintf(writer, "Price min $%s | q1 $%s | median $%s | mean $%s | q3 $%s | max $%s\n",
			formatPrice(summary.Min), formatPrice(summary.Q1), formatPrice(summary.Median),
			formatPrice(summary.Mean), formatPrice(summary.Q3), formatPrice(summary.Max)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Listing completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
