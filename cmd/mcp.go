package cmd

import (
	"github.com/huangsam/housescope/core"
	"github.com/huangsam/housescope/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [dataset]",
	Short: "Start the Housescope MCP server",
	Long:  `Launch an MCP server that allows AI agents to filter houses and render the scatterplot via standard tools.`,
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		source, err := core.NewSource(cfg)
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, cfg, source)
	},
}
