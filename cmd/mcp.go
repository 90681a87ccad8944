package cmd

import (
	"github.com/huangsam/dashviz/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the dashviz MCP server",
	Long:  `Launch an MCP server that allows AI agents to build render plans and derive labels via standard tools.`,
	Args:  cobra.NoArgs,
	// Logs go to stderr, so stdio stays free for the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, logger)
	},
}
