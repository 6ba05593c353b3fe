package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ddg-mcp/internal/adapters/driving/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the MCP server on standard input/output.

This is the transport MCP clients such as Claude Desktop and Cline use:
requests arrive on stdin, responses leave on stdout, diagnostics go to
stderr. The process exits cleanly when stdin reaches end of input.

Client configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "ddg-search": {
        "command": "/path/to/ddg-mcp",
        "args": ["serve"]
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{Search: searchService})
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}
