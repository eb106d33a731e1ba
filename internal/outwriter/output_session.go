package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/housescope/schema"
)

// LogPlotted reports how many houses a chart build drew.
func LogPlotted(w io.Writer, marks, visible int) {
	if hidden := marks - visible; hidden > 0 {
		_, _ = fmt.Fprintf(w, "📍 Plotted %d houses (%d without floor area or price hidden)\n", visible, hidden)
		return
	}
	_, _ = fmt.Fprintf(w, "📍 Plotted %d houses\n", visible)
}

// LogRebuild reports a chart rebuild during a session.
func LogRebuild(w io.Writer, state schema.SelectionState, marks int) {
	_, _ = fmt.Fprintf(w, "🔁 Rebuilt chart for %s up to $%s: %d houses\n",
		state.Period.DisplayName(), formatPrice(float64(state.MaxPrice)), marks)
}

// WriteState prints the selection state and the size of the current chart.
func WriteState(w io.Writer, state schema.SelectionState, marks int, rendered bool) {
	chart := "none"
	if rendered {
		chart = fmt.Sprintf("%d marks", marks)
	}
	_, _ = fmt.Fprintf(w, "📌 State: period=%s max-price=%d chart=%s\n", state.Period.DisplayName(), state.MaxPrice, chart)
}
