package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ddg-mcp/internal/core/domain"
)

var (
	searchKind  string
	searchLimit int
	searchPage  int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run one search from the command line",
	Long: `Runs a single search through the same service the MCP server uses.
Useful for checking gateway connectivity and proxy configuration
without an MCP client attached.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "kind", "k", "text", "search vertical: text, images, videos, news, books")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultMaxResults, "maximum number of results")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", domain.DefaultPage, "result page")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind := domain.SearchKind(searchKind)
	if !kind.IsValid() {
		return fmt.Errorf("unknown search kind %q", searchKind)
	}

	opts := domain.DefaultSearchOptions()
	opts.MaxResults = searchLimit
	opts.Page = searchPage

	results, err := searchService.Search(cmd.Context(), kind, args[0], opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, r := range results {
		cmd.Printf("  [%d] %s\n", i+1, r["title"])
		if href := r["href"]; href != "" {
			cmd.Printf("      %s\n", href)
		}
		if body := r["body"]; body != "" {
			cmd.Printf("      %s\n", body)
		}
		cmd.Println()
	}
	return nil
}
