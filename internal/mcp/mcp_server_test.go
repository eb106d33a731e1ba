package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/internal/dataset"
	mcp_internal "github.com/huangsam/housescope/internal/mcp"
	"github.com/huangsam/housescope/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(address, listDate, price, area, year string) schema.RawRecord {
	return schema.RawRecord{
		schema.FieldAddress:        address,
		schema.FieldListDate:       listDate,
		schema.FieldPrice:          price,
		schema.FieldDaysOnMarket:   "7",
		schema.FieldTotalFloorArea: area,
		schema.FieldYearBuilt:      year,
		schema.FieldAge:            "30",
		schema.FieldLotSize:        "400",
	}
}

func newTestServer(source contract.DataSource) func(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	baseCfg := &contract.Config{MaxPrice: 2000000, ResultLimit: 25, Output: schema.SVGOut}
	s := mcp_internal.NewMCPServer(baseCfg, source)
	return func(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
		tool := s.GetTool(name)
		if tool == nil {
			return nil
		}
		res, err := tool.Handler(ctx, mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: name, Arguments: args},
		})
		if err != nil {
			panic(err)
		}
		return res
	}
}

func text(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

var records = []schema.RawRecord{
	row("12 Birch St", "2020-03-01", "450000", "110", "1970"),
	row("3 Cedar Ct", "2021-08-12", "900000", "", "1985"),
	row("77 Spruce Way", "2018-01-01", "350000", "90", "1960"),
	row("5 Maple Dr", "2022-11-30", "1200000", "250", "1995"),
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	call := newTestServer(dataset.NewStatic(records))
	ctx := context.Background()

	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		expected string
	}{
		{"missing period", "filter_houses", map[string]any{}, "period is required"},
		{"bad period", "render_scatterplot", map[string]any{"period": "1800"}, "invalid period"},
		{"negative max price", "filter_houses", map[string]any{"period": "1950", "max_price": -1.0}, "max_price must be between"},
		{"bad format", "render_scatterplot", map[string]any{"period": "1950", "format": "png"}, "unknown format"},
		{"mark out of range", "house_details", map[string]any{"period": "1950", "index": 10.0}, "no such mark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := call(ctx, tt.tool, tt.args)
			require.NotNil(t, res, "Tool %s should exist", tt.tool)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, text(res), tt.expected)
		})
	}
}

func TestMCPServerHandlers_FilterHouses(t *testing.T) {
	call := newTestServer(dataset.NewStatic(records))
	res := call(context.Background(), "filter_houses", map[string]any{"period": "1950", "max_price": 1000000.0})
	require.NotNil(t, res)
	require.False(t, res.IsError, text(res))

	var out struct {
		Period string `json:"period"`
		Total  int    `json:"total"`
		Houses []struct {
			Address        string   `json:"address"`
			TotalFloorArea *float64 `json:"total_floor_area"`
		} `json:"houses"`
		Summary struct {
			Count  int     `json:"count"`
			Median float64 `json:"median"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(res)), &out))
	assert.Equal(t, "1950", out.Period)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Houses, 2)
	assert.Equal(t, "12 Birch St", out.Houses[0].Address)
	require.NotNil(t, out.Houses[0].TotalFloorArea)
	assert.InDelta(t, 110, *out.Houses[0].TotalFloorArea, 0.001)
	assert.Equal(t, "3 Cedar Ct", out.Houses[1].Address)
	assert.Nil(t, out.Houses[1].TotalFloorArea, "missing floor area is null")
	assert.Equal(t, 2, out.Summary.Count)
	assert.InDelta(t, 675000, out.Summary.Median, 0.001)

	res = call(context.Background(), "filter_houses", map[string]any{"period": "1950", "limit": 1.0})
	require.NoError(t, json.Unmarshal([]byte(text(res)), &out))
	assert.Equal(t, 3, out.Total)
	assert.Len(t, out.Houses, 1)
}

func TestMCPServerHandlers_RenderScatterplot(t *testing.T) {
	call := newTestServer(dataset.NewStatic(records))
	ctx := context.Background()

	res := call(ctx, "render_scatterplot", map[string]any{"period": "1950"})
	require.False(t, res.IsError, text(res))
	svg := text(res)
	assert.Contains(t, svg, "<svg")
	assert.Equal(t, 2, strings.Count(svg, "<circle"), "the mark without floor area is not drawn")

	res = call(ctx, "render_scatterplot", map[string]any{"period": "1950", "format": "html", "max_price": 500000.0})
	require.False(t, res.IsError, text(res))
	assert.Contains(t, text(res), "<!doctype html>")
	assert.Contains(t, text(res), "priced up to $500,000")
	assert.Equal(t, 1, strings.Count(text(res), "<circle"))
}

func TestMCPServerHandlers_HouseDetails(t *testing.T) {
	call := newTestServer(dataset.NewStatic(records))
	res := call(context.Background(), "house_details", map[string]any{"period": "1950", "index": 2.0})
	require.False(t, res.IsError, text(res))
	lines := strings.Split(text(res), "\n")
	assert.Len(t, lines, 8)
	assert.Equal(t, "Address: 5 Maple Dr", lines[0])
	assert.Contains(t, text(res), "Price: $1200000")
}

func TestMCPServerHandlers_LoadFailure(t *testing.T) {
	ctx := context.Background()
	source := &dataset.MockSource{}
	source.On("Load", ctx).Return(nil, errors.New("disk on fire"))
	call := newTestServer(source)

	for _, tool := range []string{"filter_houses", "render_scatterplot"} {
		res := call(ctx, tool, map[string]any{"period": "2000"})
		assert.True(t, res.IsError)
		assert.Contains(t, text(res), "disk on fire")
	}
}
