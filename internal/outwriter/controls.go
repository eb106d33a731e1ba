package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// TerminalControls prints the period buttons and slider readout as they change.
type TerminalControls struct {
	w         io.Writer
	useColors bool
	selected  map[schema.Period]bool
	threshold string
}

var _ contract.Controls = &TerminalControls{} // Compile-time check

// NewTerminalControls creates controls printing to w.
func NewTerminalControls(w io.Writer, useColors bool) *TerminalControls {
	return &TerminalControls{w: w, useColors: useColors, selected: make(map[schema.Period]bool)}
}

// SetSelected implements the Controls interface. Only selections are printed.
func (c *TerminalControls) SetSelected(period schema.Period, selected bool) {
	c.selected[period] = selected
	if selected {
		_, _ = fmt.Fprintf(c.w, "🔘 Period: %s\n", c.Buttons())
	}
}

// SetThresholdText implements the Controls interface.
func (c *TerminalControls) SetThresholdText(text string) {
	c.threshold = text
	_, _ = fmt.Fprintf(c.w, "💲 Max price: %s\n", text)
}

// Selected reports whether a period button is highlighted.
func (c *TerminalControls) Selected(period schema.Period) bool {
	return c.selected[period]
}

// Threshold returns the last threshold text.
func (c *TerminalControls) Threshold() string {
	return c.threshold
}

// Buttons renders the button bar.
func (c *TerminalControls) Buttons() string {
	parts := make([]string, 0, len(schema.AllPeriods))
	for _, p := range schema.AllPeriods {
		name := p.DisplayName()
		switch {
		case c.useColors:
			parts = append(parts, contract.GetButtonLabel(name, c.selected[p]))
		case c.selected[p]:
			parts = append(parts, "["+name+"]")
		default:
			parts = append(parts, " "+name+" ")
		}
	}
	return strings.Join(parts, " ")
}

// MemoryPanel records the details panel state without printing.
type MemoryPanel struct {
	Visible bool
	Lines   []string
}

var _ contract.DetailsPanel = &MemoryPanel{} // Compile-time check

// Show implements the DetailsPanel interface.
func (p *MemoryPanel) Show() { p.Visible = true }

// Hide implements the DetailsPanel interface.
func (p *MemoryPanel) Hide() { p.Visible = false }

// SetContent implements the DetailsPanel interface.
func (p *MemoryPanel) SetContent(lines []string) {
	p.Lines = append([]string(nil), lines...)
}

// TerminalPanel prints the details panel as a two-column table when shown.
type TerminalPanel struct {
	MemoryPanel
	w io.Writer
}

var _ contract.DetailsPanel = &TerminalPanel{} // Compile-time check

// NewTerminalPanel creates a panel printing to w.
func NewTerminalPanel(w io.Writer) *TerminalPanel {
	return &TerminalPanel{w: w}
}

// Show implements the DetailsPanel interface.
func (p *TerminalPanel) Show() {
	p.MemoryPanel.Show()
	if err := writeDetails(p.w, p.Lines); err != nil {
		contract.LogWarn("Failed to print details", err)
	}
}

// Hide implements the DetailsPanel interface.
func (p *TerminalPanel) Hide() {
	wasVisible := p.Visible
	p.MemoryPanel.Hide()
	if wasVisible {
		_, _ = fmt.Fprintln(p.w, "🙈 Details hidden")
	}
}

// writeDetails renders "Label: value" lines as a table.
func writeDetails(w io.Writer, lines []string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		label, value, _ := strings.Cut(line, ": ")
		rows = append(rows, []string{label, value})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
