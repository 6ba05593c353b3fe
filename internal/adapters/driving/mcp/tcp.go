package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/ddg-mcp/internal/logger"
)

// TCPServer is the socket transport adapter. Each accepted connection
// gets its own goroutine with an independent read/dispatch/write cycle;
// one client's slow or malformed input never affects another's. The
// underlying Server is immutable and shared across all connections.
type TCPServer struct {
	server *Server
	addr   string
}

// DefaultTCPAddr is the default bind address for the socket transport.
const DefaultTCPAddr = "127.0.0.1:8765"

// NewTCPServer creates a TCP transport for the given dispatcher.
func NewTCPServer(server *Server, addr string) *TCPServer {
	if addr == "" {
		addr = DefaultTCPAddr
	}
	return &TCPServer{server: server, addr: addr}
}

// ListenAndServe binds the configured address and accepts connections
// until the context is cancelled. A bind failure is returned to the
// caller; it is the one fatal startup error of this transport.
func (t *TCPServer) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", t.addr, err)
	}
	return t.Serve(ctx, ln)
}

// Serve accepts connections on ln until the context is cancelled.
func (t *TCPServer) Serve(ctx context.Context, ln net.Listener) error {
	logger.Info("TCP server listening on %s", ln.Addr())

	stop := context.AfterFunc(ctx, func() {
		ln.Close()
	})
	defer stop()

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			wg.Wait()
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			t.handleConn(ctx, conn)
		}()
	}
}

// handleConn serves one client connection. Connection close by the peer,
// or a framing error, tears down only this connection.
func (t *TCPServer) handleConn(ctx context.Context, conn net.Conn) {
	connID := uuid.NewString()[:8]
	logger.Info("Client %s connected from %s", connID, conn.RemoteAddr())

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()
	defer conn.Close()
	defer logger.Info("Client %s disconnected", connID)

	if err := t.sendGreeting(conn); err != nil {
		logger.Warn("Client %s: greeting failed: %v", connID, err)
		return
	}

	reader := bufio.NewReader(conn)
	for {
		payload, err := ReadFrame(reader)
		if err == io.EOF {
			return
		}
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn("Client %s: framing error, closing: %v", connID, err)
			}
			return
		}

		resp := t.server.HandleRaw(ctx, payload)
		if resp == nil {
			continue
		}

		data, err := EncodeResponse(resp)
		if err != nil {
			logger.Error("Client %s: encoding response failed: %v", connID, err)
			continue
		}
		if err := WriteFrame(conn, data); err != nil {
			logger.Warn("Client %s: write failed: %v", connID, err)
			return
		}
	}
}

// sendGreeting emits the capability registration notification each
// client receives on connect.
func (t *TCPServer) sendGreeting(conn net.Conn) error {
	greeting := Request{
		JSONRPC: "2.0",
		Method:  "client/registerCapability",
		Params:  json.RawMessage(`{"registrations":[]}`),
	}
	data, err := json.Marshal(greeting)
	if err != nil {
		return err
	}
	return WriteFrame(conn, data)
}
