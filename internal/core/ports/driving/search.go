package driving

import (
	"context"

	"github.com/custodia-labs/ddg-mcp/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search runs one validated search against the provider. Failures are
	// classified into the domain error taxonomy (ErrRateLimited,
	// ErrTimeout, ErrUpstream) so transports can map them onto the wire.
	Search(ctx context.Context, kind domain.SearchKind, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
