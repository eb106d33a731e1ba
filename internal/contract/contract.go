// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/housescope/schema"
)

// DataSource provides the raw dataset.
// Implementations load at most once and hand the same records to every caller.
type DataSource interface {
	// Load returns the raw records, blocking until the first load completes.
	Load(ctx context.Context) ([]schema.RawRecord, error)
}

// Surface is the drawing target of the chart renderer.
// This allows the rendering logic to be tested without producing real output.
type Surface interface {
	// AppendCanvas adds a drawing canvas of the given size to the container.
	AppendCanvas(container string, width, height int) error

	// DrawPoint draws a point mark in plot coordinates.
	DrawPoint(mark schema.Mark) error

	// DrawAxis draws an axis with its ticks.
	DrawAxis(axis schema.Axis) error

	// DrawLabel draws a text label in plot coordinates.
	DrawLabel(label schema.Label) error

	// Clear removes everything previously drawn in the container.
	Clear(container string) error
}

// Controls are the period buttons and the price slider readout.
type Controls interface {
	SetSelected(period schema.Period, selected bool)
	SetThresholdText(text string)
}

// DetailsPanel shows the fields of the hovered record.
type DetailsPanel interface {
	Show()
	Hide()
	SetContent(lines []string)
}
