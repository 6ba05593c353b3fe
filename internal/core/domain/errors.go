package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrToolNotFound indicates a tools/call named an unregistered tool.
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidArguments indicates tool arguments failed validation.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrRateLimited indicates the search provider reported throttling.
	// Retrying is the caller's decision; this core never retries.
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates the provider call exceeded the request deadline.
	ErrTimeout = errors.New("search timed out")

	// ErrUpstream indicates any other provider failure (network error,
	// malformed upstream response). Details are logged, not surfaced.
	ErrUpstream = errors.New("upstream search error")
)
