package core

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/huangsam/housescope/internal/canvas"
	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/internal/dataset"
	"github.com/huangsam/housescope/internal/outwriter"
	"github.com/huangsam/housescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type controllerHarness struct {
	ctrl     *Controller
	svg      *canvas.SVG
	controls *outwriter.TerminalControls
	panel    *outwriter.MemoryPanel
	out      *bytes.Buffer
}

func newHarness(source contract.DataSource, maxPrice int) *controllerHarness {
	h := &controllerHarness{svg: canvas.NewSVG(), panel: &outwriter.MemoryPanel{}, out: &bytes.Buffer{}}
	h.controls = outwriter.NewTerminalControls(h.out, false)
	h.ctrl = NewController(source, h.svg, h.controls, h.panel, maxPrice)
	return h
}

func TestControllerInitialState(t *testing.T) {
	h := newHarness(dataset.NewStatic(sampleRecords()), 2000000)
	assert.Equal(t, schema.SelectionState{Period: schema.NoPeriod, MaxPrice: 2000000}, h.ctrl.State())
	assert.Nil(t, h.ctrl.Chart())
	assert.False(t, h.svg.HasCanvas())
}

func TestControllerClickPeriod(t *testing.T) {
	ctx := context.Background()
	h := newHarness(dataset.NewStatic(sampleRecords()), 2000000)

	require.NoError(t, h.ctrl.ClickPeriod(ctx, schema.Period1950))
	assert.Equal(t, schema.Period1950, h.ctrl.State().Period)
	assert.True(t, h.controls.Selected(schema.Period1950))
	require.NotNil(t, h.ctrl.Chart())
	assert.Equal(t, []string{"123 Main St", "9 Pine Rd", "Lot 7"}, addresses(h.ctrl.Chart().Houses()))
	assert.True(t, h.svg.HasCanvas())
	assert.Len(t, h.svg.Marks(), 3)

	require.NoError(t, h.ctrl.ClickPeriod(ctx, schema.Period2000))
	assert.False(t, h.controls.Selected(schema.Period1950), "previous button is cleared")
	assert.True(t, h.controls.Selected(schema.Period2000))
	assert.Equal(t, []string{"88 New St", "Edge Of Period"}, addresses(h.ctrl.Chart().Houses()))
	assert.Len(t, h.svg.Marks(), 2, "previous chart is torn down")

	require.NoError(t, h.ctrl.ClickPeriod(ctx, schema.Period2000))
	assert.True(t, h.controls.Selected(schema.Period2000), "clicking the same button keeps it selected")
}

func TestControllerClickUnknownPeriod(t *testing.T) {
	h := newHarness(dataset.NewStatic(sampleRecords()), 2000000)
	err := h.ctrl.ClickPeriod(context.Background(), schema.NoPeriod)
	assert.ErrorIs(t, err, ErrUnknownPeriod)
	assert.Equal(t, schema.NoPeriod, h.ctrl.State().Period)
}

func TestControllerSlideWithoutPeriod(t *testing.T) {
	source := &dataset.MockSource{}
	surface := &canvas.MockSurface{}
	controls := outwriter.NewTerminalControls(&bytes.Buffer{}, false)
	ctrl := NewController(source, surface, controls, &outwriter.MemoryPanel{}, 2000000)

	require.NoError(t, ctrl.SlidePrice(context.Background(), 450000))
	assert.Equal(t, 450000, ctrl.State().MaxPrice)
	assert.Equal(t, "450000", controls.Threshold())
	assert.Nil(t, ctrl.Chart())

	source.AssertNotCalled(t, "Load", mock.Anything)
	surface.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestControllerSlideRebuilds(t *testing.T) {
	ctx := context.Background()
	h := newHarness(dataset.NewStatic(sampleRecords()), 2000000)
	require.NoError(t, h.ctrl.ClickPeriod(ctx, schema.Period1950))

	require.NoError(t, h.ctrl.SlidePrice(ctx, 500000))
	assert.Equal(t, "500000", h.controls.Threshold())
	assert.Equal(t, []string{"123 Main St", "Lot 7"}, addresses(h.ctrl.Chart().Houses()))
	_, top := h.ctrl.Chart().Scales.Y.Domain()
	assert.Equal(t, 500000.0, top)
}

func TestControllerSlideBelowMinimum(t *testing.T) {
	ctx := context.Background()
	h := newHarness(dataset.NewStatic(sampleRecords()), 2000000)
	require.NoError(t, h.ctrl.ClickPeriod(ctx, schema.Period1950))

	// The cheapest 1950-2000 listing after the cutoff costs 300000.
	require.NoError(t, h.ctrl.SlidePrice(ctx, 299999))
	chart := h.ctrl.Chart()
	require.NotNil(t, chart)
	assert.Empty(t, chart.Marks)
	assert.Len(t, chart.Axes, 2, "axes are still drawn")
	assert.True(t, chart.Scales.Y.Degenerate())
	lo, hi := chart.Scales.Y.Domain()
	assert.Equal(t, 299999.0, lo)
	assert.Equal(t, 299999.0, hi)
	assert.Empty(t, h.svg.Marks())
	assert.Len(t, h.svg.Axes(), 2)
}

func TestControllerLoadFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	source := &dataset.MockSource{}
	source.On("Load", ctx).Return(nil, boom)
	h := newHarness(source, 2000000)

	err := h.ctrl.ClickPeriod(ctx, schema.Period1900)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, h.ctrl.Chart())
	assert.False(t, h.svg.HasCanvas(), "no chart is drawn")
	assert.Equal(t, schema.Period1900, h.ctrl.State().Period, "the selection still moves")
}

func TestControllerClearFailure(t *testing.T) {
	boom := errors.New("boom")
	surface := &canvas.MockSurface{}
	surface.On("Clear", schema.ChartContainer).Return(boom)
	ctrl := NewController(dataset.NewStatic(nil), surface, outwriter.NewTerminalControls(&bytes.Buffer{}, false), &outwriter.MemoryPanel{}, 1)

	assert.ErrorIs(t, ctrl.ClickPeriod(context.Background(), schema.Period1900), boom)
}

func TestControllerHover(t *testing.T) {
	ctx := context.Background()
	h := newHarness(dataset.NewStatic(sampleRecords()), 2000000)

	assert.ErrorIs(t, h.ctrl.HoverEnter("anything"), ErrNoChart)
	h.ctrl.HoverLeave()
	assert.False(t, h.panel.Visible)

	require.NoError(t, h.ctrl.ClickPeriod(ctx, schema.Period1950))
	id := h.ctrl.Chart().Marks[0].ID
	require.NoError(t, h.ctrl.HoverEnter(id))
	assert.True(t, h.panel.Visible)
	assert.Equal(t, "Address: 123 Main St", h.panel.Lines[0])

	h.ctrl.HoverLeave()
	assert.False(t, h.panel.Visible)

	assert.ErrorIs(t, h.ctrl.HoverEnter("nope"), ErrUnknownMark)
}
