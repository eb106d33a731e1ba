// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/huangsam/housescope/internal/canvas"
	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
)

// ChartTitle is the heading of the HTML page.
const ChartTitle = "Housing prices by floor area"

// WriteChart writes the drawn chart as SVG or HTML, to cfg.OutputFile or stdout.
func WriteChart(svg *canvas.SVG, state schema.SelectionState, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return svg.WriteHTML(w, NewPage(state))
		}, "Wrote HTML")
	default:
		return writeWithFile(cfg.OutputFile, svg.WriteSVG, "Wrote SVG")
	}
}

// NewPage describes the HTML page for a selection.
func NewPage(state schema.SelectionState) canvas.Page {
	buttons := make([]canvas.Button, 0, len(schema.AllPeriods))
	for _, p := range schema.AllPeriods {
		buttons = append(buttons, canvas.Button{
			ID:       p.ButtonID(),
			Label:    p.DisplayName(),
			Selected: p == state.Period,
		})
	}
	return canvas.Page{
		Title:    ChartTitle,
		Subtitle: fmt.Sprintf("Built %s, listed after %s, priced up to $%s", state.Period.DisplayName(), schema.ListDateCutoff.Format(time.DateOnly), formatPrice(float64(state.MaxPrice))),
		Buttons:  buttons,
	}
}

// WriteHouses prints the filtered houses as a table followed by a price summary.
func WriteHouses(houses []schema.House, summary schema.PriceSummary, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeHouseTable(houses, summary, cfg, duration, w)
	}, "Wrote table")
}

// LogChartHeader prints a concise, 2-line header describing the selection.
func LogChartHeader(w io.Writer, cfg *contract.Config) {
	name := filepath.Base(cfg.DataPath)
	if name == "" || name == "." {
		name = "none"
	}
	_, _ = fmt.Fprintf(w, "🏠 Dataset: %s (Format: %s)\n", name, cfg.Format)
	_, _ = fmt.Fprintf(w, "📅 Built: %s, listed after %s, max price $%s\n",
		cfg.Period.DisplayName(), schema.ListDateCutoff.Format(time.DateOnly), formatPrice(float64(cfg.MaxPrice)))
}

// LogHeader prints the chart header to stderr.
func LogHeader(cfg *contract.Config) {
	LogChartHeader(os.Stderr, cfg)
}
