// Package cli wires the cobra command tree for the ddg-mcp binary.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ddg-mcp/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ddg-mcp/internal/adapters/driven/ddgs"
	"github.com/custodia-labs/ddg-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/ddg-mcp/internal/core/services"
	"github.com/custodia-labs/ddg-mcp/internal/logger"
)

var (
	flagVerbose   bool
	flagConfigDir string

	// Shared service instances, built in initServices before any
	// subcommand runs.
	searchService driving.SearchService
	settings      file.Settings
)

var rootCmd = &cobra.Command{
	Use:   "ddg-mcp",
	Short: "MCP bridge for DuckDuckGo search",
	Long: `ddg-mcp exposes DuckDuckGo search (text, images, videos, news, books)
as MCP tools over stdio or a TCP socket. The actual searching is done by
an external DDGS-compatible gateway; this binary handles the protocol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.ddg-mcp)")
}

// initServices resolves configuration and builds the search service
// shared by all commands. Failures here are fatal startup errors.
func initServices() error {
	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	settings = file.ResolveSettings(store)
	logger.Debug("Config file: %s", store.Path())

	provider, err := ddgs.NewClient(ddgs.Config{
		BaseURL:  settings.GatewayURL,
		ProxyURL: settings.ProxyURL,
	})
	if err != nil {
		return fmt.Errorf("configuring search gateway client: %w", err)
	}

	searchService = services.NewSearchService(provider, settings.SearchTimeout)
	return nil
}

// ExecuteContext runs the root command with the given context. Context
// cancellation (SIGINT/SIGTERM in main) shuts the transports down.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
