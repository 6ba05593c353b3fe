package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrame(t *testing.T) {
	t.Run("length-prefixed frame", func(t *testing.T) {
		payload := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
		input := fmt.Sprintf("%d\n%s\n", len(payload), payload)

		got, err := ReadFrame(bufio.NewReader(strings.NewReader(input)))

		require.NoError(t, err)
		assert.Equal(t, payload, string(got))
	})

	t.Run("bare JSON line", func(t *testing.T) {
		input := `{"jsonrpc":"2.0","id":2,"method":"initialize"}` + "\n"

		got, err := ReadFrame(bufio.NewReader(strings.NewReader(input)))

		require.NoError(t, err)
		assert.JSONEq(t, `{"jsonrpc":"2.0","id":2,"method":"initialize"}`, string(got))
	})

	t.Run("skips blank lines between frames", func(t *testing.T) {
		payload := `{"method":"tools/list","id":3}`
		input := fmt.Sprintf("\n\n%d\n%s\n", len(payload), payload)

		got, err := ReadFrame(bufio.NewReader(strings.NewReader(input)))

		require.NoError(t, err)
		assert.Equal(t, payload, string(got))
	})

	t.Run("consecutive frames", func(t *testing.T) {
		first := `{"id":1,"method":"tools/list"}`
		second := `{"id":2,"method":"tools/list"}`
		input := fmt.Sprintf("%d\n%s\n%d\n%s\n", len(first), first, len(second), second)
		reader := bufio.NewReader(strings.NewReader(input))

		got1, err := ReadFrame(reader)
		require.NoError(t, err)
		got2, err := ReadFrame(reader)
		require.NoError(t, err)

		assert.Equal(t, first, string(got1))
		assert.Equal(t, second, string(got2))
	})

	t.Run("clean EOF", func(t *testing.T) {
		_, err := ReadFrame(bufio.NewReader(strings.NewReader("")))
		assert.Equal(t, io.EOF, err)
	})

	t.Run("invalid length line", func(t *testing.T) {
		_, err := ReadFrame(bufio.NewReader(strings.NewReader("banana\n")))
		require.Error(t, err)
		assert.NotEqual(t, io.EOF, err)
	})

	t.Run("declared length over the limit", func(t *testing.T) {
		_, err := ReadFrame(bufio.NewReader(strings.NewReader("9999999999999999\n")))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds limit")
	})

	t.Run("declared length at the limit is allocated", func(t *testing.T) {
		payload := strings.Repeat("x", 64)
		input := fmt.Sprintf("%d\n%s", MaxFrameBytes, payload)

		// Allocation succeeds; the short body is the only failure.
		_, err := ReadFrame(bufio.NewReader(strings.NewReader(input)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "short frame")
	})

	t.Run("truncated frame body", func(t *testing.T) {
		_, err := ReadFrame(bufio.NewReader(strings.NewReader("100\n{\"short\":true}")))
		require.Error(t, err)
	})
}

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte(`{"id":1,"result":{}}`)

	require.NoError(t, WriteFrame(&buf, payload))

	want := fmt.Sprintf("%d\n%s\n", len(payload), payload)
	assert.Equal(t, want, buf.String())

	// Whatever we write must be readable back.
	got, err := ReadFrame(bufio.NewReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"search_text"}}`))

		require.NoError(t, err)
		assert.Equal(t, "tools/call", req.Method)
		assert.Equal(t, json.RawMessage("7"), req.ID)
		assert.False(t, req.IsNotification())
	})

	t.Run("string id preserved as-is", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{"id":"abc-1","method":"initialize"}`))

		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`"abc-1"`), req.ID)
	})

	t.Run("missing id is a notification", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{"method":"progress"}`))

		require.NoError(t, err)
		assert.True(t, req.IsNotification())
	})

	t.Run("unparseable payload", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{not json`))

		assert.Nil(t, req)
		assert.ErrorIs(t, err, errMalformedPayload)
	})

	t.Run("missing method", func(t *testing.T) {
		_, err := DecodeRequest([]byte(`{"id":1}`))
		assert.ErrorIs(t, err, errMalformedPayload)
	})

	t.Run("unknown method is a decode-time error", func(t *testing.T) {
		req, err := DecodeRequest([]byte(`{"id":1,"method":"resources/list"}`))

		assert.ErrorIs(t, err, errUnsupportedMethod)
		// The envelope is still returned so the caller can answer with
		// the request's own id.
		require.NotNil(t, req)
		assert.Equal(t, json.RawMessage("1"), req.ID)
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("result envelope", func(t *testing.T) {
		resp := resultResponse(json.RawMessage("42"), map[string]any{"ok": true})

		data, err := EncodeResponse(resp)
		require.NoError(t, err)

		var decoded Response
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, json.RawMessage("42"), decoded.ID)
		assert.Nil(t, decoded.Error)
		assert.NotNil(t, decoded.Result)
	})

	t.Run("error envelope", func(t *testing.T) {
		resp := errorResponse(json.RawMessage(`"req-9"`), codeInvalidParams, "invalid arguments: query: required")

		data, err := EncodeResponse(resp)
		require.NoError(t, err)

		var decoded Response
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, json.RawMessage(`"req-9"`), decoded.ID)
		assert.Nil(t, decoded.Result)
		require.NotNil(t, decoded.Error)
		assert.Equal(t, codeInvalidParams, decoded.Error.Code)
		assert.Equal(t, "invalid arguments: query: required", decoded.Error.Message)
	})

	t.Run("id field always present", func(t *testing.T) {
		resp := errorResponse(nil, codeParse, "parse error")

		data, err := EncodeResponse(resp)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"id":null`)
	})
}
