package core

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/huangsam/housescope/core/scale"
	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
)

// markNamespace scopes the name-based mark IDs.
var markNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/huangsam/housescope/mark"))

// Renderer draws charts onto a surface.
type Renderer struct {
	Container string
	TickCount int
}

// NewRenderer creates a renderer for the default chart container.
func NewRenderer() *Renderer {
	return &Renderer{Container: schema.ChartContainer, TickCount: scale.DefaultTickCount}
}

// Render draws one point per house followed by both axes and their labels.
// It always draws what it is given; an empty slice yields axes and no points.
func (r *Renderer) Render(ctx context.Context, houses []schema.House, scales Scales, surface contract.Surface) (*Chart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := surface.AppendCanvas(r.Container, schema.TotalWidth, schema.TotalHeight); err != nil {
		return nil, fmt.Errorf("append canvas: %w", err)
	}

	chart := newChart(r.Container, scales, len(houses))
	seen := make(map[string]int, len(houses))
	for i, h := range houses {
		lines := DetailLines(h)
		fields := encodeFields(lines)
		seen[string(fields)]++
		// The occurrence count separates exact duplicates.
		key := strconv.AppendInt(fields, int64(seen[string(fields)]), 10)

		x := scales.X.Apply(h.TotalFloorArea)
		y := scales.Y.Apply(h.Price)
		mark := schema.Mark{
			ID:     uuid.NewSHA1(markNamespace, key).String(),
			Index:  i,
			X:      x,
			Y:      y,
			Radius: schema.PointRadius,
			Fill:   schema.PointFill,
			Hidden: !isFinite(x) || !isFinite(y),
			Title:  strings.Join(lines, "\n"),
		}
		if err := chart.register(mark, h); err != nil {
			return nil, err
		}
		if err := surface.DrawPoint(mark); err != nil {
			return nil, fmt.Errorf("draw point %d: %w", i, err)
		}
	}

	for i, axis := range r.axes(scales) {
		if err := surface.DrawAxis(axis); err != nil {
			return nil, fmt.Errorf("draw %s axis: %w", axis.Orientation, err)
		}
		label := axisLabels[i]
		if err := surface.DrawLabel(label); err != nil {
			return nil, fmt.Errorf("draw label %q: %w", label.Text, err)
		}
		chart.Axes = append(chart.Axes, axis)
		chart.Labels = append(chart.Labels, label)
	}
	return chart, nil
}

// axisLabels are positioned relative to the plot origin, in axes order.
var axisLabels = []schema.Label{
	{
		Text: schema.XAxisLabel,
		X:    schema.PlotWidth / 2,
		Y:    schema.PlotHeight + schema.BottomMargin - 10,
	},
	{
		Text:     schema.YAxisLabel,
		X:        -schema.PlotHeight / 2,
		Y:        -schema.LeftMargin + 20,
		Rotation: -90,
	},
}

// axes returns the bottom axis followed by the left axis.
func (r *Renderer) axes(scales Scales) []schema.Axis {
	count := r.TickCount
	if count <= 0 {
		count = scale.DefaultTickCount
	}
	return []schema.Axis{
		buildAxis(schema.BottomAxis, scales.X, count, 0, schema.PlotHeight),
		buildAxis(schema.LeftAxis, scales.Y, count, 0, 0),
	}
}

func buildAxis(orientation schema.Orientation, s scale.Linear, count int, offsetX, offsetY float64) schema.Axis {
	r0, r1 := s.Range()
	format := s.TickFormat(count)
	values := s.Ticks(count)
	ticks := make([]schema.Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, schema.Tick{Value: v, Offset: s.Apply(v), Label: format(v)})
	}
	return schema.Axis{
		Orientation: orientation,
		OffsetX:     offsetX,
		OffsetY:     offsetY,
		RangeStart:  r0,
		RangeEnd:    r1,
		Ticks:       ticks,
	}
}

// encodeFields length-prefixes every line so that distinct records never share
// an encoding, whatever characters their fields hold.
func encodeFields(lines []string) []byte {
	var b []byte
	for _, line := range lines {
		b = strconv.AppendInt(b, int64(len(line)), 10)
		b = append(b, ':')
		b = append(b, line...)
	}
	return b
}

// DetailLines returns the labeled fields shown in the details panel.
func DetailLines(h schema.House) []string {
	return []string{
		"Address: " + h.Address,
		"List Date: " + h.ListDate,
		"Price: $" + formatInteger(h.Price),
		"Days on Market: " + h.DaysOnMarket,
		"Total Floor Area: " + formatInteger(h.TotalFloorArea),
		"Year Built: " + formatInteger(h.YearBuilt),
		"Age: " + h.Age,
		"Lot Size: " + h.LotSize,
	}
}

func formatInteger(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
