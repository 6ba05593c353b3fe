package mcp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/ddg-mcp/internal/logger"
)

// Run serves the MCP protocol over stdin/stdout.
// It blocks until end of input or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve is the stream transport loop: strictly sequential, one request
// at a time in the order received, exactly one response per non-
// notification request. Each response is written with a single Write so
// it is observable immediately.
//
// Policy for broken input, as exercised by the tests: a malformed JSON
// payload inside a readable frame is dropped (or answered with an error
// envelope when an id can be salvaged) and the loop continues; a framing
// error the reader cannot resynchronise from ends the loop cleanly.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		payload, err := ReadFrame(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			logger.Warn("Stream framing error, shutting down: %v", err)
			return nil
		}

		resp := s.HandleRaw(ctx, payload)
		if resp == nil {
			continue
		}

		data, err := EncodeResponse(resp)
		if err != nil {
			logger.Error("Encoding response failed: %v", err)
			continue
		}
		if err := WriteFrame(out, data); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
}
