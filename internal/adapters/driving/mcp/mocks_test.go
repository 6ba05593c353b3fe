package mcp

import (
	"context"
	"sync"

	"github.com/custodia-labs/ddg-mcp/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
// It records every invocation; safe for concurrent use so the TCP tests
// can hammer it from multiple connections.
type mockSearchService struct {
	mu      sync.Mutex
	results []domain.SearchResult
	err     error

	calls []searchCall
}

type searchCall struct {
	kind  domain.SearchKind
	query string
	opts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context, kind domain.SearchKind, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, searchCall{kind: kind, query: query, opts: opts})
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockSearchService) lastCall() (searchCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return searchCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// panicSearchService panics on every call, for crash-safety tests.
type panicSearchService struct{}

func (panicSearchService) Search(
	_ context.Context, _ domain.SearchKind, _ string, _ domain.SearchOptions,
) ([]domain.SearchResult, error) {
	panic("provider blew up")
}

func newTestServer(t interface{ Fatal(...any) }, search *mockSearchService) *Server {
	server, err := NewServer(&Ports{Search: search})
	if err != nil {
		t.Fatal(err)
	}
	return server
}
