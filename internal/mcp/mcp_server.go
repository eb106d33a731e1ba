// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Housescope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.DataSource) *server.MCPServer {
	s := server.NewMCPServer(
		"Housescope Chart Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
	}

	// --- 1. Tool: filter_houses ---
	s.AddTool(mcp.NewTool("filter_houses",
		mcp.WithDescription("List houses built in a period, listed after 2019-01-01 and priced at or below a maximum."),
		mcp.WithString("period", mcp.Description("Year-built period."), mcp.Enum("1900", "1950", "2000"), mcp.Required()),
		mcp.WithNumber("max_price", mcp.Description("Maximum price in CAD. Defaults to the configured max price.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of houses returned.")),
	), h.handleFilterHouses)

	// --- 2. Tool: render_scatterplot ---
	s.AddTool(mcp.NewTool("render_scatterplot",
		mcp.WithDescription("Render the price by floor area scatterplot for a period as SVG or HTML."),
		mcp.WithString("period", mcp.Description("Year-built period."), mcp.Enum("1900", "1950", "2000"), mcp.Required()),
		mcp.WithNumber("max_price", mcp.Description("Maximum price in CAD.")),
		mcp.WithString("format", mcp.Description("Output format. Defaults to 'svg'."), mcp.Enum("svg", "html")),
	), h.handleRenderScatterplot)

	// --- 3. Tool: house_details ---
	s.AddTool(mcp.NewTool("house_details",
		mcp.WithDescription("Show the details panel of one mark from the scatterplot, as shown on hover."),
		mcp.WithString("period", mcp.Description("Year-built period."), mcp.Enum("1900", "1950", "2000"), mcp.Required()),
		mcp.WithNumber("max_price", mcp.Description("Maximum price in CAD.")),
		mcp.WithNumber("index", mcp.Description("Zero-based mark index in the chart."), mcp.Required()),
	), h.handleHouseDetails)

	return s
}

// StartMCPServer starts the Housescope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.DataSource) error {
	s := NewMCPServer(baseCfg, source)
	return server.ServeStdio(s)
}
