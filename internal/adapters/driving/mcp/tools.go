package mcp

import (
	"context"
	"errors"

	"github.com/custodia-labs/ddg-mcp/internal/core/domain"
	"github.com/custodia-labs/ddg-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/ddg-mcp/internal/logger"
)

// Tool names, in catalogue order.
const (
	ToolSearchOperators = "get_search_operators"
	ToolSearchText      = "search_text"
	ToolSearchImages    = "search_images"
	ToolSearchVideos    = "search_videos"
	ToolSearchNews      = "search_news"
	ToolSearchBooks     = "search_books"
)

// newToolset builds the complete tool registry: exactly six entries,
// fixed order, no registration after startup.
func newToolset(search driving.SearchService) *Registry {
	r := newRegistry()

	r.add(ToolDescriptor{
		Name:        ToolSearchOperators,
		Description: "Documentation for DuckDuckGo search operators",
		InputSchema: InputSchema{
			Type:       "object",
			Properties: map[string]Property{},
		},
	}, handleSearchOperators)

	r.add(searchDescriptor(ToolSearchText, "Search the web for text results via DuckDuckGo", domain.KindText),
		searchHandler(search, domain.KindText))
	r.add(searchDescriptor(ToolSearchImages, "Search for images via DuckDuckGo", domain.KindImages),
		searchHandler(search, domain.KindImages))
	r.add(searchDescriptor(ToolSearchVideos, "Search for videos via DuckDuckGo", domain.KindVideos),
		searchHandler(search, domain.KindVideos))
	r.add(searchDescriptor(ToolSearchNews, "Search news articles via DuckDuckGo", domain.KindNews),
		searchHandler(search, domain.KindNews))
	r.add(searchDescriptor(ToolSearchBooks, "Search for books via DuckDuckGo", domain.KindBooks),
		searchHandler(search, domain.KindBooks))

	return r
}

// handleSearchOperators returns the static operator documentation.
// Arguments are accepted and ignored; the schema has zero parameters.
func handleSearchOperators(_ context.Context, _ map[string]any) (CallToolResult, *RPCError) {
	result, err := textResult(searchOperators())
	if err != nil {
		return CallToolResult{}, &RPCError{Code: codeInternal, Message: "failed to encode documentation"}
	}
	return result, nil
}

// searchHandler builds the tools/call handler for one search vertical:
// validate and default the arguments, invoke the search service, wrap
// the outcome.
func searchHandler(search driving.SearchService, kind domain.SearchKind) ToolHandler {
	return func(ctx context.Context, args map[string]any) (CallToolResult, *RPCError) {
		query, opts, fieldErrs := domain.ParseSearchOptions(kind, args)
		if len(fieldErrs) > 0 {
			return CallToolResult{}, &RPCError{Code: codeInvalidParams, Message: fieldErrs.Error()}
		}

		results, err := search.Search(ctx, kind, query, opts)
		if err != nil {
			return CallToolResult{}, searchError(err)
		}

		result, err := textResult(results)
		if err != nil {
			logger.Error("Encoding %s results failed: %v", kind, err)
			return CallToolResult{}, &RPCError{Code: codeInternal, Message: "failed to encode results"}
		}
		return result, nil
	}
}

// searchError maps the domain failure taxonomy onto wire error codes.
// Upstream detail is already logged by the service; only generic
// messages leave the process.
func searchError(err error) *RPCError {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return &RPCError{Code: codeRateLimited, Message: "search provider rate limited the request"}
	case errors.Is(err, domain.ErrTimeout):
		return &RPCError{Code: codeTimeout, Message: "search timed out"}
	default:
		return &RPCError{Code: codeUpstream, Message: "search provider error"}
	}
}

// searchDescriptor builds the input schema for one search vertical from
// the domain's argument catalogue.
func searchDescriptor(name, description string, kind domain.SearchKind) ToolDescriptor {
	props := make(map[string]Property)
	for _, arg := range domain.AllowedArguments(kind) {
		props[arg] = argProperty(kind, arg)
	}
	return ToolDescriptor{
		Name:        name,
		Description: description,
		InputSchema: InputSchema{
			Type:       "object",
			Properties: props,
			Required:   []string{domain.ArgQuery},
		},
	}
}

func argProperty(kind domain.SearchKind, arg string) Property {
	switch arg {
	case domain.ArgQuery:
		return Property{Type: "string", Description: "Search query"}
	case domain.ArgRegion:
		return Property{Type: "string", Description: "Region code", Default: domain.DefaultRegion}
	case domain.ArgSafeSearch:
		return Property{
			Type:    "string",
			Default: domain.DefaultSafeSearch.String(),
			Enum: []string{
				domain.SafeSearchOn.String(),
				domain.SafeSearchModerate.String(),
				domain.SafeSearchOff.String(),
			},
		}
	case domain.ArgTimeLimit:
		limits := domain.AllowedTimeLimits(kind)
		enum := make([]string, len(limits))
		for i, tl := range limits {
			enum[i] = tl.String()
		}
		return Property{Type: "string", Description: "Recency window", Enum: enum}
	case domain.ArgMaxResults:
		minimum, maximum := 1, domain.MaxResultsCeiling
		return Property{
			Type:    "integer",
			Default: domain.DefaultMaxResults,
			Minimum: &minimum,
			Maximum: &maximum,
		}
	case domain.ArgPage:
		minimum := 1
		return Property{Type: "integer", Default: domain.DefaultPage, Minimum: &minimum}
	case domain.ArgBackend:
		return Property{Type: "string", Default: domain.DefaultBackend}
	default:
		// Free-form facet strings (size, color, resolution, ...).
		return Property{Type: "string"}
	}
}
