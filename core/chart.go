package core

import (
	"errors"
	"fmt"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
)

// ErrUnknownMark is returned when a mark ID does not belong to the chart.
var ErrUnknownMark = errors.New("unknown mark")

// ErrDuplicateMark is returned when two marks of one chart would share an ID.
var ErrDuplicateMark = errors.New("duplicate mark id")

// Chart is the result of one render: its marks, axes and the records behind each mark.
type Chart struct {
	Container string
	Scales    Scales
	Marks     []schema.Mark
	Axes      []schema.Axis
	Labels    []schema.Label

	houses map[string]schema.House // keyed by mark ID
}

func newChart(container string, scales Scales, size int) *Chart {
	return &Chart{
		Container: container,
		Scales:    scales,
		Marks:     make([]schema.Mark, 0, size),
		houses:    make(map[string]schema.House, size),
	}
}

func (c *Chart) register(mark schema.Mark, h schema.House) error {
	if _, taken := c.houses[mark.ID]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateMark, mark.ID)
	}
	c.Marks = append(c.Marks, mark)
	c.houses[mark.ID] = h
	return nil
}

// House returns the record bound to a mark.
func (c *Chart) House(markID string) (schema.House, bool) {
	h, ok := c.houses[markID]
	return h, ok
}

// Houses returns the records in mark order.
func (c *Chart) Houses() []schema.House {
	out := make([]schema.House, len(c.Marks))
	for i, m := range c.Marks {
		out[i] = c.houses[m.ID]
	}
	return out
}

// VisibleMarks counts the marks with finite coordinates.
func (c *Chart) VisibleMarks() int {
	n := 0
	for _, m := range c.Marks {
		if !m.Hidden {
			n++
		}
	}
	return n
}

// HoverEnter fills the panel with the details of the hovered mark and shows it.
func (c *Chart) HoverEnter(markID string, panel contract.DetailsPanel) error {
	h, ok := c.houses[markID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMark, markID)
	}
	panel.SetContent(DetailLines(h))
	panel.Show()
	return nil
}

// HoverLeave hides the panel.
func (c *Chart) HoverLeave(panel contract.DetailsPanel) {
	panel.Hide()
}
