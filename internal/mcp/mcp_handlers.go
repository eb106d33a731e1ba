package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/huangsam/housescope/core"
	"github.com/huangsam/housescope/internal/canvas"
	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/internal/outwriter"
	"github.com/huangsam/housescope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.DataSource
}

// houseResult is a House with non-numeric values encoded as null.
type houseResult struct {
	Address        string   `json:"address"`
	ListDate       string   `json:"list_date"`
	Price          *float64 `json:"price"`
	DaysOnMarket   string   `json:"days_on_market"`
	TotalFloorArea *float64 `json:"total_floor_area"`
	YearBuilt      *float64 `json:"year_built"`
	Age            string   `json:"age"`
	LotSize        string   `json:"lot_size"`
}

type filterResult struct {
	Period  schema.Period        `json:"period"`
	Params  schema.FilterParams  `json:"params"`
	Total   int                  `json:"total"`
	Houses  []houseResult        `json:"houses"`
	Summary *schema.PriceSummary `json:"summary,omitempty"`
}

func toHouseResult(h schema.House) houseResult {
	return houseResult{
		Address:        h.Address,
		ListDate:       h.ListDate,
		Price:          finite(h.Price),
		DaysOnMarket:   h.DaysOnMarket,
		TotalFloorArea: finite(h.TotalFloorArea),
		YearBuilt:      finite(h.YearBuilt),
		Age:            h.Age,
		LotSize:        h.LotSize,
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// selection reads the period and max_price arguments shared by every tool.
func (h *toolHandler) selection(request mcp.CallToolRequest) (schema.SelectionState, error) {
	period, err := schema.ParsePeriod(request.GetString("period", ""))
	if err != nil {
		return schema.SelectionState{}, err
	}
	if period == schema.NoPeriod {
		return schema.SelectionState{}, errors.New("period is required")
	}
	maxPrice := request.GetInt("max_price", h.baseCfg.MaxPrice)
	if maxPrice < 0 || maxPrice > contract.MaxPriceCeiling {
		return schema.SelectionState{}, fmt.Errorf("max_price must be between 0 and %d", contract.MaxPriceCeiling)
	}
	return schema.SelectionState{Period: period, MaxPrice: maxPrice}, nil
}

// newController builds a controller for one request. Controllers are not shared
// between requests; the dataset source is.
func (h *toolHandler) newController(ctx context.Context, state schema.SelectionState, svg *canvas.SVG, panel contract.DetailsPanel) (*core.Controller, error) {
	ctrl := core.NewController(h.source, svg, outwriter.NewTerminalControls(io.Discard, false), panel, state.MaxPrice)
	if err := ctrl.ClickPeriod(ctx, state.Period); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func (h *toolHandler) handleFilterHouses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.selection(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	limit := h.baseCfg.ResultLimit
	if l := request.GetInt("limit", 0); l > 0 {
		limit = min(l, contract.MaxResultLimit)
	}

	raws, err := h.source.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("filter failed: %v", err)), nil
	}
	params, _ := state.FilterParams()
	houses := core.NewPipeline().Prepare(raws, params)

	result := filterResult{Period: state.Period, Params: params, Total: len(houses), Houses: []houseResult{}}
	for i, house := range houses {
		if limit > 0 && i >= limit {
			break
		}
		result.Houses = append(result.Houses, toHouseResult(house))
	}
	if summary := core.SummarizePrices(houses); summary.Count > 0 {
		result.Summary = &summary
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderScatterplot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.selection(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	format := schema.OutputMode(request.GetString("format", string(schema.SVGOut)))
	if format != schema.SVGOut && format != schema.HTMLOut {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: unknown format %q", format)), nil
	}

	svg := canvas.NewSVG()
	if _, err := h.newController(ctx, state, svg, &outwriter.MemoryPanel{}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}

	var buf bytes.Buffer
	if format == schema.HTMLOut {
		err = svg.WriteHTML(&buf, outwriter.NewPage(state))
	} else {
		err = svg.WriteSVG(&buf)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (h *toolHandler) handleHouseDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.selection(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	index := request.GetInt("index", -1)

	panel := &outwriter.MemoryPanel{}
	ctrl, err := h.newController(ctx, state, canvas.NewSVG(), panel)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	id, err := ctrl.ResolveMark(fmt.Sprint(index))
	if err == nil {
		err = ctrl.HoverEnter(id)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("no such mark: %v", err)), nil
	}
	return mcp.NewToolResultText(strings.Join(panel.Lines, "\n")), nil
}
