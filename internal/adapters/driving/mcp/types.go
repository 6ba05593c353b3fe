package mcp

import "encoding/json"

// ProtocolVersion is the MCP protocol revision this server implements.
const ProtocolVersion = "2024-11-05"

// Server identity returned by initialize.
const (
	ServerName    = "ddg-mcp"
	ServerVersion = "1.0.0"
)

// Request is an incoming JSON-RPC 2.0 request or notification.
// Notifications have an empty ID and receive no response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification returns true if the request carries no id token.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// Response is an outgoing JSON-RPC 2.0 response. Exactly one of Result
// and Error is set, never both, never neither. ID echoes the request id
// unchanged, same type and value.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC 2.0 error codes, plus server-defined codes for the upstream
// failure taxonomy (-32000..-32099 is the reserved server range).
const (
	codeParse          = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternal       = -32603

	codeUpstream    = -32000
	codeRateLimited = -32001
	codeTimeout     = -32002
)

// initializeResult is the response payload for the initialize method.
type initializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ServerInfo      serverInfo         `json:"serverInfo"`
	Capabilities    serverCapabilities `json:"capabilities"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type serverCapabilities struct {
	Tools struct{} `json:"tools"`
}

// ToolDescriptor describes one tool as returned by tools/list.
// Descriptors are built at startup and never mutated.
type ToolDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema is the JSON Schema for a tool's arguments.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes a single argument in an input schema.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Minimum     *int     `json:"minimum,omitempty"`
	Maximum     *int     `json:"maximum,omitempty"`
}

// listToolsResult is the response payload for tools/list.
type listToolsResult struct {
	Tools []ToolDescriptor `json:"tools"`
}

// callToolParams is the request payload for tools/call. ToolName is an
// accepted alias for Name.
type callToolParams struct {
	Name      string         `json:"name"`
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
}

// toolName resolves the tool name, preferring the canonical key.
func (p *callToolParams) toolName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ToolName
}

// CallToolResult is the response payload for tools/call.
type CallToolResult struct {
	Content []ContentBlock `json:"content"`
}

// ContentBlock is a piece of tool output. Only "text" is produced.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// textResult wraps pretty-printed JSON into the tool result shape.
func textResult(v any) (CallToolResult, error) {
	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return CallToolResult{}, err
	}
	return CallToolResult{
		Content: []ContentBlock{{Type: "text", Text: string(text)}},
	}, nil
}
