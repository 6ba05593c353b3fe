// Package mcp implements the MCP protocol surface of the DDG search
// bridge: request decoding, tool dispatch, response encoding, and the
// stdio and TCP transport adapters. Envelopes are JSON-RPC 2.0; framing
// is length-prefixed with a bare-JSON-line fallback (see codec.go).
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// errUnsupportedMethod is returned by the decoder for a well-formed
// envelope whose method is not recognised.
var errUnsupportedMethod = errors.New("unsupported method")

// errMalformedPayload is returned by the decoder when the payload is not
// a JSON-RPC request object.
var errMalformedPayload = errors.New("malformed payload")
