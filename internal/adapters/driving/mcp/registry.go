package mcp

import "context"

// ToolHandler executes one tool invocation. It returns the result payload
// or a protocol error; it must not panic and it must not write to the
// transport.
type ToolHandler func(ctx context.Context, args map[string]any) (CallToolResult, *RPCError)

// tool pairs a descriptor with its handler.
type tool struct {
	descriptor ToolDescriptor
	handler    ToolHandler
}

// Registry is the static tool catalogue. It is populated once at server
// construction and never mutated afterwards, so it is safe to share
// across concurrent connection handlers without locking.
type Registry struct {
	order []string
	tools map[string]tool
}

// newRegistry creates an empty registry. Registration happens only
// during construction in newToolset; there is no dynamic registration.
func newRegistry() *Registry {
	return &Registry{
		tools: make(map[string]tool),
	}
}

// add registers a tool. Build-time only.
func (r *Registry) add(desc ToolDescriptor, h ToolHandler) {
	if _, exists := r.tools[desc.Name]; !exists {
		r.order = append(r.order, desc.Name)
	}
	r.tools[desc.Name] = tool{descriptor: desc, handler: h}
}

// Descriptors returns the tool descriptors in registration order.
// tools/list uses this verbatim; repeated calls return identical lists.
func (r *Registry) Descriptors() []ToolDescriptor {
	descs := make([]ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		descs = append(descs, r.tools[name].descriptor)
	}
	return descs
}

// Handler returns the handler for a tool name.
func (r *Registry) Handler(name string) (ToolHandler, bool) {
	t, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return t.handler, true
}
