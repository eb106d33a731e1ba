package core

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/huangsam/housescope/internal/canvas"
	"github.com/huangsam/housescope/internal/outwriter"
	"github.com/huangsam/housescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func renderHouses(t *testing.T, houses []schema.House, maxPrice int) (*Chart, *canvas.SVG) {
	t.Helper()
	svg := canvas.NewSVG()
	chart, err := NewRenderer().Render(context.Background(), houses, BuildScales(houses, maxPrice), svg)
	require.NoError(t, err)
	return chart, svg
}

func TestRenderEmpty(t *testing.T) {
	surface := &canvas.MockSurface{}
	surface.On("AppendCanvas", schema.ChartContainer, 800, 500).Return(nil).Once()
	surface.On("DrawAxis", mock.Anything).Return(nil).Twice()
	surface.On("DrawLabel", mock.Anything).Return(nil).Twice()

	chart, err := NewRenderer().Render(context.Background(), []schema.House{}, BuildScales(nil, 2000000), surface)
	require.NoError(t, err)
	assert.Empty(t, chart.Marks)
	assert.Len(t, chart.Axes, 2)
	surface.AssertExpectations(t)
	surface.AssertNotCalled(t, "DrawPoint", mock.Anything)
}

func TestRenderMarks(t *testing.T) {
	houses := []schema.House{
		house("A", "2020-05-01", 300000, 100, 1960),
		house("B", "2020-05-01", 500000, 200, 1970),
	}
	chart, svg := renderHouses(t, houses, 500000)

	require.Len(t, chart.Marks, 2)
	assert.Equal(t, chart.Marks, svg.Marks())
	assert.Equal(t, 2, chart.VisibleMarks())

	a, b := chart.Marks[0], chart.Marks[1]
	assert.Equal(t, 0, a.Index)
	assert.InDelta(t, 0, a.X, 1e-9)
	assert.InDelta(t, schema.PlotHeight, a.Y, 1e-9)
	assert.InDelta(t, schema.PlotWidth, b.X, 1e-9)
	assert.InDelta(t, 0, b.Y, 1e-9)
	assert.Equal(t, float64(schema.PointRadius), a.Radius)
	assert.Equal(t, schema.PointFill, a.Fill)
	assert.Contains(t, a.Title, "Address: A")
	assert.NotEqual(t, a.ID, b.ID)

	got, ok := chart.House(b.ID)
	require.True(t, ok)
	assert.Equal(t, "B", got.Address)
	assert.Equal(t, []string{"A", "B"}, addresses(chart.Houses()))
}

func TestRenderHiddenMarks(t *testing.T) {
	houses := []schema.House{
		house("no area", "2020-05-01", 300000, math.NaN(), 1960),
		house("B", "2020-05-01", 500000, 200, 1970),
	}
	chart, _ := renderHouses(t, houses, 500000)

	require.Len(t, chart.Marks, 2)
	assert.True(t, chart.Marks[0].Hidden)
	assert.False(t, chart.Marks[1].Hidden)
	assert.Equal(t, 1, chart.VisibleMarks())
	_, ok := chart.House(chart.Marks[0].ID)
	assert.True(t, ok, "hidden marks stay bound to their record")
}

func TestRenderMarkIDs(t *testing.T) {
	a := house("A", "2020-05-01", 300000, 100, 1960)
	b := house("B", "2020-05-01", 500000, 200, 1970)

	first, _ := renderHouses(t, []schema.House{a, b}, 500000)
	second, _ := renderHouses(t, []schema.House{b}, 500000)
	assert.Equal(t, first.Marks[1].ID, second.Marks[0].ID, "IDs survive rebuilds")

	dupes, _ := renderHouses(t, []schema.House{a, a}, 500000)
	assert.NotEqual(t, dupes.Marks[0].ID, dupes.Marks[1].ID, "duplicate records get distinct IDs")
	assert.Equal(t, first.Marks[0].ID, dupes.Marks[0].ID)
}

func TestRenderMarkIDsWithLookalikeFields(t *testing.T) {
	a := house("A", "2020-05-01", 300000, 100, 1960)
	a.LotSize = "500"
	b := a
	b.LotSize = "500#2"
	c := a
	c.LotSize = "500\nLot Size: 500"

	chart, _ := renderHouses(t, []schema.House{a, a, b, c}, 500000)
	require.Len(t, chart.Marks, 4)

	ids := make(map[string]struct{}, len(chart.Marks))
	for _, m := range chart.Marks {
		ids[m.ID] = struct{}{}
	}
	assert.Len(t, ids, 4, "every mark gets its own ID")

	panel := &outwriter.MemoryPanel{}
	for i, want := range []string{"500", "500", "500#2", "500\nLot Size: 500"} {
		require.NoError(t, chart.HoverEnter(chart.Marks[i].ID, panel))
		assert.Equal(t, "Lot Size: "+want, panel.Lines[len(panel.Lines)-1], "mark %d", i)
	}
}

func TestChartRejectsDuplicateIDs(t *testing.T) {
	chart := newChart(schema.ChartContainer, BuildScales(nil, 1), 2)
	mark := schema.Mark{ID: "same"}
	require.NoError(t, chart.register(mark, house("A", "2020-05-01", 1, 1, 1960)))
	err := chart.register(mark, house("B", "2020-05-01", 1, 1, 1960))
	assert.ErrorIs(t, err, ErrDuplicateMark)
	assert.Len(t, chart.Marks, 1)
	h, ok := chart.House("same")
	require.True(t, ok)
	assert.Equal(t, "A", h.Address, "the first record keeps the ID")
}

func TestRenderAxes(t *testing.T) {
	houses := []schema.House{
		house("A", "2020-05-01", 300000, 80, 1960),
		house("B", "2020-05-01", 400000, 120, 1970),
	}
	chart, svg := renderHouses(t, houses, 500000)

	require.Len(t, chart.Axes, 2)
	bottom, left := chart.Axes[0], chart.Axes[1]

	assert.Equal(t, schema.BottomAxis, bottom.Orientation)
	assert.Equal(t, float64(schema.PlotHeight), bottom.OffsetY)
	assert.Equal(t, 0.0, bottom.RangeStart)
	assert.Equal(t, float64(schema.PlotWidth), bottom.RangeEnd)
	require.NotEmpty(t, bottom.Ticks)
	assert.Equal(t, 80.0, bottom.Ticks[0].Value)
	assert.Equal(t, "80", bottom.Ticks[0].Label)
	assert.InDelta(t, 0, bottom.Ticks[0].Offset, 1e-9)

	assert.Equal(t, schema.LeftAxis, left.Orientation)
	assert.Equal(t, float64(schema.PlotHeight), left.RangeStart)
	assert.Equal(t, 0.0, left.RangeEnd)
	require.NotEmpty(t, left.Ticks)
	assert.Equal(t, "300,000", left.Ticks[0].Label)

	require.Len(t, chart.Labels, 2)
	assert.Equal(t, schema.Label{Text: schema.XAxisLabel, X: 350, Y: 470}, chart.Labels[0])
	assert.Equal(t, schema.Label{Text: schema.YAxisLabel, X: -215, Y: -60, Rotation: -90}, chart.Labels[1])
	assert.Equal(t, chart.Labels, svg.Labels())
}

func TestRenderSurfaceErrors(t *testing.T) {
	boom := errors.New("boom")
	houses := []schema.House{house("A", "2020-05-01", 300000, 80, 1960)}

	t.Run("append canvas", func(t *testing.T) {
		surface := &canvas.MockSurface{}
		surface.On("AppendCanvas", mock.Anything, mock.Anything, mock.Anything).Return(boom)
		_, err := NewRenderer().Render(context.Background(), houses, BuildScales(houses, 1), surface)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("draw point", func(t *testing.T) {
		surface := &canvas.MockSurface{}
		surface.On("AppendCanvas", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		surface.On("DrawPoint", mock.Anything).Return(boom)
		_, err := NewRenderer().Render(context.Background(), houses, BuildScales(houses, 1), surface)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewRenderer().Render(ctx, houses, BuildScales(houses, 1), &canvas.MockSurface{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHover(t *testing.T) {
	houses := Normalize([]schema.RawRecord{record("123 Main St", "2020-05-01", "300000", "120", "1960")})
	chart, _ := renderHouses(t, houses, 2000000)
	require.Len(t, chart.Marks, 1)

	panel := &outwriter.MemoryPanel{}
	require.NoError(t, chart.HoverEnter(chart.Marks[0].ID, panel))
	assert.True(t, panel.Visible)
	assert.Equal(t, []string{
		"Address: 123 Main St",
		"List Date: 2020-05-01",
		"Price: $300000",
		"Days on Market: 10",
		"Total Floor Area: 120",
		"Year Built: 1960",
		"Age: 40",
		"Lot Size: 500",
	}, panel.Lines)

	chart.HoverLeave(panel)
	assert.False(t, panel.Visible)

	err := chart.HoverEnter("not-a-mark", panel)
	assert.ErrorIs(t, err, ErrUnknownMark)
	assert.False(t, panel.Visible)
}

func TestDetailLinesNaN(t *testing.T) {
	lines := DetailLines(house("A", "2020-05-01", 300000, math.NaN(), 1960))
	assert.Equal(t, "Total Floor Area: NaN", lines[4])
}
