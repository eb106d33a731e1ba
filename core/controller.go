package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
)

// ErrUnknownPeriod is returned when a click names no period button.
var ErrUnknownPeriod = errors.New("unknown period")

// ErrNoChart is returned by hover events before any chart was rendered.
var ErrNoChart = errors.New("no chart rendered")

// Controller reacts to interaction events by updating the selection state
// and rebuilding the chart. It is not safe for concurrent use.
type Controller struct {
	source   contract.DataSource
	surface  contract.Surface
	controls contract.Controls
	panel    contract.DetailsPanel
	pipeline *Pipeline

	state schema.SelectionState
	chart *Chart
}

// NewController creates a controller with no period selected.
func NewController(source contract.DataSource, surface contract.Surface, controls contract.Controls, panel contract.DetailsPanel, maxPrice int) *Controller {
	return &Controller{
		source:   source,
		surface:  surface,
		controls: controls,
		panel:    panel,
		pipeline: NewPipeline(),
		state:    schema.SelectionState{Period: schema.NoPeriod, MaxPrice: maxPrice},
	}
}

// State returns a snapshot of the selection state.
func (c *Controller) State() schema.SelectionState {
	return c.state
}

// Chart returns the last rendered chart, or nil.
func (c *Controller) Chart() *Chart {
	return c.chart
}

// ClickPeriod selects a period button and rebuilds the chart.
func (c *Controller) ClickPeriod(ctx context.Context, period schema.Period) error {
	if _, _, ok := period.Bounds(); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
	if c.state.HasPeriod() {
		c.controls.SetSelected(c.state.Period, false)
	}
	c.controls.SetSelected(period, true)
	c.state.Period = period
	return c.rebuild(ctx)
}

// SlidePrice moves the price threshold. The chart is rebuilt only while a period is selected.
func (c *Controller) SlidePrice(ctx context.Context, value int) error {
	c.state.MaxPrice = value
	c.controls.SetThresholdText(strconv.Itoa(value))
	if !c.state.HasPeriod() {
		return nil
	}
	return c.rebuild(ctx)
}

// HoverEnter shows the details of a mark from the current chart.
func (c *Controller) HoverEnter(markID string) error {
	if c.chart == nil {
		return ErrNoChart
	}
	return c.chart.HoverEnter(markID, c.panel)
}

// HoverLeave hides the details panel.
func (c *Controller) HoverLeave() {
	if c.chart == nil {
		c.panel.Hide()
		return
	}
	c.chart.HoverLeave(c.panel)
}

// rebuild tears down the drawn chart and runs the pipeline for the current state.
func (c *Controller) rebuild(ctx context.Context) error {
	c.chart = nil
	if err := c.surface.Clear(c.pipeline.Renderer.Container); err != nil {
		return fmt.Errorf("clear chart: %w", err)
	}
	params, ok := c.state.FilterParams()
	if !ok {
		return nil
	}
	raws, err := c.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	chart, err := c.pipeline.Build(ctx, raws, params, c.surface)
	if err != nil {
		return err
	}
	c.chart = chart
	return nil
}
