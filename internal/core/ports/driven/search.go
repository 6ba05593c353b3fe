package driven

import (
	"context"

	"github.com/custodia-labs/ddg-mcp/internal/core/domain"
)

// SearchProvider performs searches against the external search backend.
// It is the collaborator this bridge delegates all real search work to.
//
// Implementations must honour ctx cancellation: the core wraps every call
// in a request-level deadline and maps expiry to domain.ErrTimeout.
// Throttling must be reported as domain.ErrRateLimited (possibly wrapped);
// any other failure is classified as domain.ErrUpstream by the core.
type SearchProvider interface {
	// Search runs one query against the given vertical and returns the
	// provider's result records verbatim. Page and MaxResults in opts are
	// passed through unmodified; offset arithmetic is the provider's
	// contract, not this core's.
	Search(ctx context.Context, kind domain.SearchKind, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
