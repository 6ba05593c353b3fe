package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ddg-mcp/internal/core/domain"
)

// frame builds a length-prefixed wire message.
func frame(payload string) string {
	return fmt.Sprintf("%d\n%s\n", len(payload), payload)
}

// readResponses drains every response frame from the output buffer.
func readResponses(t *testing.T, out *bytes.Buffer) []Response {
	t.Helper()
	reader := bufio.NewReader(out)
	var responses []Response
	for {
		payload, err := ReadFrame(reader)
		if err != nil {
			return responses
		}
		var resp Response
		require.NoError(t, json.Unmarshal(payload, &resp))
		responses = append(responses, resp)
	}
}

func TestServe_RequestResponseCycle(t *testing.T) {
	search := &mockSearchService{
		results: []domain.SearchResult{{"title": "Go"}},
	}
	server := newTestServer(t, search)

	input := frame(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`) +
		frame(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`) +
		frame(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"search_text","arguments":{"query":"golang"}}}`)

	var out bytes.Buffer
	err := server.Serve(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	responses := readResponses(t, &out)
	require.Len(t, responses, 3)
	assert.Equal(t, json.RawMessage("1"), responses[0].ID)
	assert.Equal(t, json.RawMessage("2"), responses[1].ID)
	assert.Equal(t, json.RawMessage("3"), responses[2].ID)
	for _, resp := range responses {
		assert.Nil(t, resp.Error)
		assert.NotNil(t, resp.Result)
	}
}

func TestServe_BareJSONLines(t *testing.T) {
	server := newTestServer(t, &mockSearchService{})

	input := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n"

	var out bytes.Buffer
	err := server.Serve(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	responses := readResponses(t, &out)
	require.Len(t, responses, 1)
	assert.Nil(t, responses[0].Error)
}

func TestServe_MalformedPayloadDoesNotCrash(t *testing.T) {
	server := newTestServer(t, &mockSearchService{})

	bad := `{definitely not json`
	input := frame(bad) + frame(`{"jsonrpc":"2.0","id":5,"method":"tools/list"}`)

	var out bytes.Buffer
	err := server.Serve(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	// The malformed frame is dropped; the next request still gets served.
	responses := readResponses(t, &out)
	require.Len(t, responses, 1)
	assert.Equal(t, json.RawMessage("5"), responses[0].ID)
}

func TestServe_FramingErrorEndsLoopCleanly(t *testing.T) {
	server := newTestServer(t, &mockSearchService{})

	var out bytes.Buffer
	err := server.Serve(context.Background(), strings.NewReader("not-a-length\n"), &out)

	require.NoError(t, err)
	assert.Empty(t, readResponses(t, &out))
}

func TestServe_OversizedLengthDeclarationEndsLoopCleanly(t *testing.T) {
	server := newTestServer(t, &mockSearchService{})

	// The declared length must never be trusted as an allocation size.
	var out bytes.Buffer
	err := server.Serve(context.Background(), strings.NewReader("9999999999999999\n"), &out)

	require.NoError(t, err)
	assert.Empty(t, readResponses(t, &out))
}

func TestServe_NotificationsProduceNoOutput(t *testing.T) {
	server := newTestServer(t, &mockSearchService{})

	input := frame(`{"jsonrpc":"2.0","method":"progress","params":{"value":10}}`) +
		frame(`{"jsonrpc":"2.0","method":"tools/list"}`)

	var out bytes.Buffer
	err := server.Serve(context.Background(), strings.NewReader(input), &out)

	require.NoError(t, err)
	assert.Empty(t, readResponses(t, &out))
}

func TestServe_EOFTerminates(t *testing.T) {
	server := newTestServer(t, &mockSearchService{})

	var out bytes.Buffer
	err := server.Serve(context.Background(), strings.NewReader(""), &out)
	require.NoError(t, err)
}
