package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/ddg-mcp/internal/logger"
)

// Server is the protocol dispatcher. It is transport-agnostic: the stdio
// and TCP adapters feed it raw frames and write back whatever it returns.
// A Server is immutable after construction and safe for concurrent use.
type Server struct {
	ports    *Ports
	registry *Registry
}

// NewServer creates a new MCP server with the given ports. The tool
// registry is built here, once, and never changes afterwards.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	return &Server{
		ports:    ports,
		registry: newToolset(ports.Search),
	}, nil
}

// Registry exposes the tool catalogue, mainly for tests and diagnostics.
func (s *Server) Registry() *Registry {
	return s.registry
}

// HandleRaw processes one raw message: decode, dispatch, and return the
// response envelope. A nil response means nothing should be written
// (notifications, or malformed input with no salvageable id). It never
// panics and never returns an error: every failure becomes an error
// envelope or a logged drop.
func (s *Server) HandleRaw(ctx context.Context, payload []byte) *Response {
	req, err := DecodeRequest(payload)
	if err != nil {
		if req == nil {
			// Unparseable JSON: the id cannot be salvaged, so there is
			// nothing to correlate a response with. Drop and log.
			logger.Warn("Dropping malformed payload: %v", err)
			return nil
		}
		if req.IsNotification() {
			logger.Warn("Ignoring unsupported notification method %q", req.Method)
			return nil
		}
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}

	return s.Dispatch(ctx, req)
}

// Dispatch routes a decoded request to its method handler. Notifications
// (absent id) are acknowledged internally but never answered; this is
// the documented policy for id-less requests.
func (s *Server) Dispatch(ctx context.Context, req *Request) *Response {
	if req.Method == "progress" {
		// Progress notifications carry no work for this server.
		return nil
	}
	if req.IsNotification() {
		logger.Debug("Skipping notification for method %q", req.Method)
		return nil
	}

	switch req.Method {
	case "client/registerCapability":
		return resultResponse(req.ID, struct{}{})
	case "initialize":
		return resultResponse(req.ID, initializeResult{
			ProtocolVersion: ProtocolVersion,
			ServerInfo:      serverInfo{Name: ServerName, Version: ServerVersion},
			Capabilities:    serverCapabilities{},
		})
	case "tools/list":
		return resultResponse(req.ID, listToolsResult{Tools: s.registry.Descriptors()})
	case "tools/call":
		return s.dispatchToolCall(ctx, req)
	default:
		// DecodeRequest guarantees method membership; this is unreachable
		// for frames that came through the codec.
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

// dispatchToolCall resolves the named tool, runs its handler, and wraps
// the outcome. Tool panics are recovered: a single bad request must
// never take the process down.
func (s *Server) dispatchToolCall(ctx context.Context, req *Request) (resp *Response) {
	var params callToolParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, codeInvalidParams, "invalid params: "+err.Error())
		}
	}

	name := params.toolName()
	if name == "" {
		return errorResponse(req.ID, codeInvalidParams, "invalid params: tool name is required")
	}

	handler, ok := s.registry.Handler(name)
	if !ok {
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Unknown tool: %s", name))
	}

	args := params.Arguments
	if args == nil {
		args = map[string]any{}
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Tool %s panicked: %v", name, r)
			resp = errorResponse(req.ID, codeInternal, "internal error")
		}
	}()

	logger.Debug("Calling tool %s", name)
	result, rpcErr := handler(ctx, args)
	if rpcErr != nil {
		return &Response{JSONRPC: "2.0", ID: requestID(req.ID), Error: rpcErr}
	}
	return resultResponse(req.ID, result)
}

func resultResponse(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: "2.0", ID: requestID(id), Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      requestID(id),
		Error:   &RPCError{Code: code, Message: message},
	}
}

// requestID normalises an absent id to an explicit null so the id field
// is always present on responses.
func requestID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}
