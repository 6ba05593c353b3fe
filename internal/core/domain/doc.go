// Package domain defines the core business entities for the DDG MCP bridge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchKind: A search vertical (text, images, videos, news, books)
//   - SearchOptions: Validated, defaulted parameters for one search call
//   - SearchResult: A verbatim result record from the provider
//   - FieldError: A single argument validation failure
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
