package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ddg-mcp/internal/adapters/driving/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("%s %s (protocol %s)\n", mcp.ServerName, mcp.ServerVersion, mcp.ProtocolVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
