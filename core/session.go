package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/housescope/schema"
)

// EventKind names an interaction event.
type EventKind string

// All interaction events supported.
const (
	ClickEvent EventKind = "click"
	SlideEvent EventKind = "slide"
	HoverEvent EventKind = "hover"
	LeaveEvent EventKind = "leave"
	StateEvent EventKind = "state"
)

// Event is one scripted interaction.
type Event struct {
	Kind   EventKind
	Period schema.Period // click
	Price  int           // slide
	Target string        // hover: mark index or mark ID
}

// Rebuilds reports whether applying the event may redraw the chart.
func (e Event) Rebuilds() bool {
	return e.Kind == ClickEvent || e.Kind == SlideEvent
}

// ParseEvent parses a session line such as "click 1950" or "slide 300000".
// Blank lines and lines starting with '#' yield ok=false.
func ParseEvent(line string) (ev Event, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Event{}, false, nil
	}
	fields := strings.Fields(line)
	kind := EventKind(strings.ToLower(fields[0]))
	args := fields[1:]

	switch kind {
	case ClickEvent:
		if len(args) != 1 {
			return Event{}, false, fmt.Errorf("click needs one period, got %q", line)
		}
		period, err := schema.ParsePeriod(args[0])
		if err != nil {
			return Event{}, false, err
		}
		if period == schema.NoPeriod {
			return Event{}, false, fmt.Errorf("%w: %q", ErrUnknownPeriod, args[0])
		}
		return Event{Kind: kind, Period: period}, true, nil
	case SlideEvent:
		if len(args) != 1 {
			return Event{}, false, fmt.Errorf("slide needs one price, got %q", line)
		}
		price, err := strconv.Atoi(strings.ReplaceAll(args[0], ",", ""))
		if err != nil || price < 0 {
			return Event{}, false, fmt.Errorf("invalid slide price %q", args[0])
		}
		return Event{Kind: kind, Price: price}, true, nil
	case HoverEvent:
		if len(args) != 1 {
			return Event{}, false, fmt.Errorf("hover needs a mark index or ID, got %q", line)
		}
		return Event{Kind: kind, Target: args[0]}, true, nil
	case LeaveEvent, StateEvent:
		if len(args) != 0 {
			return Event{}, false, fmt.Errorf("%s takes no arguments, got %q", kind, line)
		}
		return Event{Kind: kind}, true, nil
	default:
		return Event{}, false, fmt.Errorf("unknown event %q", fields[0])
	}
}

// Apply dispatches an event to the controller.
// The state event changes nothing and is left to the caller to report.
func (c *Controller) Apply(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case ClickEvent:
		return c.ClickPeriod(ctx, ev.Period)
	case SlideEvent:
		return c.SlidePrice(ctx, ev.Price)
	case HoverEvent:
		id, err := c.ResolveMark(ev.Target)
		if err != nil {
			return err
		}
		return c.HoverEnter(id)
	case LeaveEvent:
		c.HoverLeave()
		return nil
	case StateEvent:
		return nil
	default:
		return fmt.Errorf("unknown event %q", ev.Kind)
	}
}

// ResolveMark maps a mark index in the current chart to its ID.
// Targets that are not indexes are returned unchanged.
func (c *Controller) ResolveMark(target string) (string, error) {
	i, err := strconv.Atoi(target)
	if err != nil {
		return target, nil
	}
	if c.chart == nil {
		return "", ErrNoChart
	}
	if i < 0 || i >= len(c.chart.Marks) {
		return "", fmt.Errorf("%w: index %d out of %d marks", ErrUnknownMark, i, len(c.chart.Marks))
	}
	return c.chart.Marks[i].ID, nil
}
