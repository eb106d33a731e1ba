// Package canvas has the drawing surfaces the chart renderer draws onto.
package canvas

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"
	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
)

var (
	// ErrNoCanvas is returned when drawing before AppendCanvas.
	ErrNoCanvas = errors.New("no canvas in container")

	// ErrCanvasExists is returned when appending a second canvas without clearing the first.
	ErrCanvasExists = errors.New("canvas already present in container")
)

// Axis tick geometry in pixels.
const (
	tickSize    = 6
	tickPadding = 3
)

// SVG is an in-memory surface that serializes to an SVG document.
// Draw calls are kept in order so the document matches the draw sequence.
type SVG struct {
	container string
	width     int
	height    int
	open      bool

	marks    []schema.Mark
	axes     []schema.Axis
	labels   []schema.Label
	elements []func(*svgo.SVG)
}

var _ contract.Surface = &SVG{} // Compile-time check

// NewSVG creates an empty SVG surface.
func NewSVG() *SVG {
	return &SVG{}
}

// AppendCanvas implements the Surface interface.
func (s *SVG) AppendCanvas(container string, width, height int) error {
	if s.open {
		return fmt.Errorf("%w: %s", ErrCanvasExists, s.container)
	}
	s.container, s.width, s.height, s.open = container, width, height, true
	return nil
}

// DrawPoint implements the Surface interface. Hidden marks are kept but not serialized.
func (s *SVG) DrawPoint(mark schema.Mark) error {
	if !s.open {
		return ErrNoCanvas
	}
	s.marks = append(s.marks, mark)
	if mark.Hidden {
		return nil
	}
	s.elements = append(s.elements, func(c *svgo.SVG) {
		c.Group(`class="mark"`, attr("data-mark", mark.ID), fmt.Sprintf(`data-index="%d"`, mark.Index))
		c.Title(mark.Title)
		c.Circle(px(mark.X), px(mark.Y), px(mark.Radius), attr("fill", mark.Fill))
		c.Gend()
	})
	return nil
}

// DrawAxis implements the Surface interface.
func (s *SVG) DrawAxis(axis schema.Axis) error {
	if !s.open {
		return ErrNoCanvas
	}
	s.axes = append(s.axes, axis)
	s.elements = append(s.elements, func(c *svgo.SVG) { drawAxis(c, axis) })
	return nil
}

// DrawLabel implements the Surface interface.
func (s *SVG) DrawLabel(label schema.Label) error {
	if !s.open {
		return ErrNoCanvas
	}
	s.labels = append(s.labels, label)
	s.elements = append(s.elements, func(c *svgo.SVG) {
		attrs := []string{`class="label"`, `text-anchor="middle"`}
		if label.Rotation != 0 {
			attrs = append(attrs, fmt.Sprintf(`transform="rotate(%d)"`, px(label.Rotation)))
		}
		c.Text(px(label.X), px(label.Y), label.Text, attrs...)
	})
	return nil
}

// Clear implements the Surface interface. Clearing an empty container is a no-op.
func (s *SVG) Clear(container string) error {
	if s.open && s.container != container {
		return nil
	}
	*s = SVG{}
	return nil
}

// HasCanvas reports whether a canvas is currently appended.
func (s *SVG) HasCanvas() bool { return s.open }

// Size returns the canvas size.
func (s *SVG) Size() (int, int) { return s.width, s.height }

// Marks returns the drawn marks, hidden ones included.
func (s *SVG) Marks() []schema.Mark { return s.marks }

// Axes returns the drawn axes.
func (s *SVG) Axes() []schema.Axis { return s.axes }

// Labels returns the drawn labels.
func (s *SVG) Labels() []schema.Label { return s.labels }

// WriteSVG writes the standalone SVG document.
func (s *SVG) WriteSVG(w io.Writer) error {
	if !s.open {
		return ErrNoCanvas
	}
	ew := &errWriter{w: w}
	s.render(svgo.New(ew))
	return ew.err
}

// render replays the draw calls inside an <svg> element, with the plot group
// translated by the margins.
func (s *SVG) render(c *svgo.SVG) {
	c.Start(s.width, s.height, attr("id", s.container), `font-family="sans-serif"`, `font-size="10"`)
	c.Translate(schema.LeftMargin, schema.TopMargin)
	for _, draw := range s.elements {
		draw(c)
	}
	c.Gend()
	c.End()
}

func drawAxis(c *svgo.SVG, axis schema.Axis) {
	c.Group(fmt.Sprintf(`class="axis axis-%s"`, axis.Orientation),
		fmt.Sprintf(`transform="translate(%d,%d)"`, px(axis.OffsetX), px(axis.OffsetY)), `fill="none"`)
	r0, r1 := px(axis.RangeStart), px(axis.RangeEnd)
	switch axis.Orientation {
	case schema.LeftAxis:
		c.Path(fmt.Sprintf("M-%d,%dH0V%dH-%d", tickSize, r0, r1, tickSize), `class="domain"`, `stroke="currentColor"`)
		for _, t := range axis.Ticks {
			c.Group(`class="tick"`, fmt.Sprintf(`transform="translate(0,%d)"`, px(t.Offset)))
			c.Line(0, 0, -tickSize, 0, `stroke="currentColor"`)
			c.Text(-(tickSize + tickPadding), 0, t.Label, `fill="currentColor"`, `dy="0.32em"`, `text-anchor="end"`)
			c.Gend()
		}
	default:
		c.Path(fmt.Sprintf("M%d,%dV0H%dV%d", r0, tickSize, r1, tickSize), `class="domain"`, `stroke="currentColor"`)
		for _, t := range axis.Ticks {
			c.Group(`class="tick"`, fmt.Sprintf(`transform="translate(%d,0)"`, px(t.Offset)))
			c.Line(0, 0, 0, tickSize, `stroke="currentColor"`)
			c.Text(0, tickSize+tickPadding, t.Label, `fill="currentColor"`, `dy="0.71em"`, `text-anchor="middle"`)
			c.Gend()
		}
	}
	c.Gend()
}

// attr formats an escaped name="value" attribute.
func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// px rounds a coordinate to a whole pixel. Non-finite values map to 0.
func px(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
