package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ddg-mcp/internal/adapters/driving/mcp"
)

var flagTCPAddr string

var tcpCmd = &cobra.Command{
	Use:   "tcp",
	Short: "Start the MCP server on a TCP socket",
	Long: `Start the MCP server on a TCP socket.

Each connected client gets an independent session speaking the same
framed protocol as stdio mode. The bind address comes from --addr, the
DDG_MCP_TCP_ADDR environment variable, or the config file, in that
order of precedence (default ` + mcp.DefaultTCPAddr + `).`,
	RunE: runTCP,
}

func init() {
	tcpCmd.Flags().StringVar(&flagTCPAddr, "addr", "", "bind address (host:port)")
	rootCmd.AddCommand(tcpCmd)
}

func runTCP(cmd *cobra.Command, _ []string) error {
	addr := flagTCPAddr
	if addr == "" {
		addr = settings.TCPAddr
	}

	server, err := mcp.NewServer(&mcp.Ports{Search: searchService})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "TCP server starting on %s\n", orDefault(addr))
	return mcp.NewTCPServer(server, addr).ListenAndServe(cmd.Context())
}

func orDefault(addr string) string {
	if addr == "" {
		return mcp.DefaultTCPAddr
	}
	return addr
}
