// Package core has the chart pipeline and the interaction logic around it.
package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/housescope/internal/canvas"
	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/internal/dataset"
	"github.com/huangsam/housescope/internal/outwriter"
	"github.com/huangsam/housescope/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ErrNoPeriod is returned by one-shot commands when no period is configured.
var ErrNoPeriod = errors.New("no period selected: pass --period 1900, 1950 or 2000")

// NewSource opens the configured dataset.
func NewSource(cfg *contract.Config) (*dataset.Source, error) {
	if err := cfg.RequireDataPath(); err != nil {
		return nil, err
	}
	return dataset.NewSource(cfg.DataPath, cfg.Format, cfg.Sheet)
}

// ExecutePlot renders the chart for the configured period and writes it as SVG or HTML.
func ExecutePlot(ctx context.Context, cfg *contract.Config) error {
	source, err := NewSource(cfg)
	if err != nil {
		return err
	}
	return RunPlot(ctx, cfg, source)
}

// RunPlot renders one chart from source.
func RunPlot(ctx context.Context, cfg *contract.Config, source contract.DataSource) error {
	state := schema.SelectionState{Period: cfg.Period, MaxPrice: cfg.MaxPrice}
	params, ok := state.FilterParams()
	if !ok {
		return ErrNoPeriod
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogHeader(cfg)
	}

	raws, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	svg := canvas.NewSVG()
	chart, err := NewPipeline().Build(ctx, raws, params, svg)
	if err != nil {
		return err
	}
	outwriter.LogPlotted(os.Stderr, len(chart.Marks), chart.VisibleMarks())
	return outwriter.WriteChart(svg, state, cfg)
}

// ExecuteList prints the filtered houses for the configured period.
func ExecuteList(ctx context.Context, cfg *contract.Config) error {
	source, err := NewSource(cfg)
	if err != nil {
		return err
	}
	return RunList(ctx, cfg, source)
}

// RunList prints the filtered houses from source with a price summary.
func RunList(ctx context.Context, cfg *contract.Config, source contract.DataSource) error {
	start := time.Now()
	state := schema.SelectionState{Period: cfg.Period, MaxPrice: cfg.MaxPrice}
	params, ok := state.FilterParams()
	if !ok {
		return ErrNoPeriod
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogHeader(cfg)
	}

	raws, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	houses := NewPipeline().Prepare(raws, params)
	return outwriter.WriteHouses(houses, SummarizePrices(houses), cfg, time.Since(start))
}

// ExecuteSession replays interaction events from cfg.EventsFile or stdin.
func ExecuteSession(ctx context.Context, cfg *contract.Config) error {
	source, err := NewSource(cfg)
	if err != nil {
		return err
	}
	events := io.Reader(os.Stdin)
	if cfg.EventsFile != "" {
		file, err := os.Open(cfg.EventsFile)
		if err != nil {
			return fmt.Errorf("failed to open events file: %w", err)
		}
		defer func() { _ = file.Close() }()
		events = file
	}
	return RunSession(ctx, cfg, source, events, os.Stdout)
}

// RunSession drives a controller with one event per line of events.
// A configured period is clicked before the first event. Malformed lines and
// hovers over unknown marks are skipped with a warning; a failed rebuild ends
// the session. With cfg.OutputFile set the chart is written after every rebuild.
func RunSession(ctx context.Context, cfg *contract.Config, source contract.DataSource, events io.Reader, out io.Writer) error {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogChartHeader(out, cfg)
	}
	svg := canvas.NewSVG()
	ctrl := NewController(source, svg, outwriter.NewTerminalControls(out, cfg.UseColors), outwriter.NewTerminalPanel(out), cfg.MaxPrice)

	apply := func(ev Event) error {
		if err := ctrl.Apply(ctx, ev); err != nil {
			return err
		}
		if ev.Kind == StateEvent {
			chart := ctrl.Chart()
			marks := 0
			if chart != nil {
				marks = len(chart.Marks)
			}
			outwriter.WriteState(out, ctrl.State(), marks, chart != nil)
		}
		if ev.Rebuilds() && ctrl.State().HasPeriod() {
			outwriter.LogRebuild(out, ctrl.State(), len(ctrl.Chart().Marks))
			if cfg.OutputFile != "" {
				return outwriter.WriteChart(svg, ctrl.State(), cfg)
			}
		}
		return nil
	}

	if cfg.Period != schema.NoPeriod {
		if err := apply(Event{Kind: ClickEvent, Period: cfg.Period}); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(events)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		ev, ok, err := ParseEvent(scanner.Text())
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Skipping line %d", lineNo), err)
			continue
		}
		if !ok {
			continue
		}
		if err := apply(ev); err != nil {
			if errors.Is(err, ErrUnknownMark) || errors.Is(err, ErrNoChart) {
				contract.LogWarn(fmt.Sprintf("Skipping line %d", lineNo), err)
				continue
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
