package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/custodia-labs/ddg-mcp/internal/core/domain"
	"github.com/custodia-labs/ddg-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/ddg-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/ddg-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultSearchTimeout bounds a single provider call when no timeout is
// configured. The provider contract has no deadline of its own, so the
// guard lives here.
const DefaultSearchTimeout = 30 * time.Second

// SearchService delegates searches to the external provider, bounding
// each call with a deadline and classifying failures into the domain
// error taxonomy.
type SearchService struct {
	provider driven.SearchProvider
	timeout  time.Duration
}

// NewSearchService creates a new search service. A non-positive timeout
// falls back to DefaultSearchTimeout.
func NewSearchService(provider driven.SearchProvider, timeout time.Duration) *SearchService {
	if timeout <= 0 {
		timeout = DefaultSearchTimeout
	}
	return &SearchService{
		provider: provider,
		timeout:  timeout,
	}
}

// Search runs one query against the provider.
func (s *SearchService) Search(
	ctx context.Context, kind domain.SearchKind, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Kind: %s, Query: %q", kind, query)
	logger.Debug("Options: region=%s safesearch=%s timelimit=%q max_results=%d page=%d backend=%s",
		opts.Region, opts.SafeSearch, opts.TimeLimit, opts.MaxResults, opts.Page, opts.Backend)

	query = strings.TrimSpace(query)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results, err := s.provider.Search(ctx, kind, query, opts)
	if err != nil {
		return nil, s.classify(err)
	}

	logger.Debug("Provider returned %d results", len(results))
	if results == nil {
		results = []domain.SearchResult{}
	}
	return results, nil
}

// classify maps provider failures onto the domain taxonomy. Rate limiting
// and timeouts keep their identity; everything else becomes ErrUpstream
// with the original cause logged rather than surfaced.
func (s *SearchService) classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		logger.Warn("Provider rate limited: %v", err)
		return domain.ErrRateLimited
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Provider call timed out after %s", s.timeout)
		return domain.ErrTimeout
	default:
		logger.Warn("Provider failure: %v", err)
		return domain.ErrUpstream
	}
}
