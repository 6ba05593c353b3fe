package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Framing, shared by both transports. A message on the wire is either:
//
//	<decimal byte length>"\n"<json>"\n"     (length-prefixed frame)
//	<json object on a single line>"\n"      (bare line, detected by "{")
//
// Responses are always written length-prefixed.

// MaxFrameBytes bounds the declared length of an incoming frame. The
// length line is peer-controlled input and must never size an
// allocation on its own; a declaration over the limit is a framing
// error, same as a non-numeric length line.
const MaxFrameBytes = 4 << 20

// ReadFrame reads one raw message from the stream. Empty lines between
// frames are skipped. io.EOF means clean end of input; any other error
// means the stream cannot be resynchronised and the caller should stop
// reading (stdio) or close the connection (TCP).
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	var line string
	for {
		raw, err := r.ReadString('\n')
		line = strings.TrimSpace(raw)
		if err != nil {
			if err == io.EOF && line == "" {
				return nil, io.EOF
			}
			if err != io.EOF {
				return nil, err
			}
		}
		if line != "" {
			break
		}
		if err == io.EOF {
			return nil, io.EOF
		}
	}

	// Manual testing convenience carried over from the original server:
	// a line that already looks like a JSON object is a complete message.
	if strings.HasPrefix(line, "{") {
		return []byte(line), nil
	}

	length, err := strconv.Atoi(line)
	if err != nil || length < 0 {
		return nil, fmt.Errorf("invalid frame length %q", line)
	}
	if length > MaxFrameBytes {
		return nil, fmt.Errorf("frame length %d exceeds limit %d", length, MaxFrameBytes)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("short frame: %w", err)
	}

	// Consume the trailing newline; EOF here is fine.
	if b, err := r.ReadByte(); err == nil && b != '\n' {
		_ = r.UnreadByte()
	}

	return payload, nil
}

// WriteFrame writes one length-prefixed message. The frame is assembled
// first and written with a single Write so concurrent writers on separate
// connections never interleave within a message.
func WriteFrame(w io.Writer, payload []byte) error {
	var buf bytes.Buffer
	buf.Grow(len(payload) + 16)
	fmt.Fprintf(&buf, "%d\n", len(payload))
	buf.Write(payload)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

// supportedMethods are the envelope methods the decoder recognises.
// progress is a notification; client/registerCapability is acknowledged
// with an empty result.
var supportedMethods = map[string]bool{
	"initialize":                true,
	"tools/list":                true,
	"tools/call":                true,
	"client/registerCapability": true,
	"progress":                  true,
}

// DecodeRequest parses one raw message into a request envelope.
// It fails with errMalformedPayload if the payload is not a JSON object
// with a method, and errUnsupportedMethod if the method is present but
// not recognised. Unknown methods are a decode-time error, not a
// dispatch-time one.
func DecodeRequest(payload []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedPayload, err)
	}
	if req.Method == "" {
		return nil, fmt.Errorf("%w: missing method", errMalformedPayload)
	}
	if !supportedMethods[req.Method] {
		return &req, fmt.Errorf("%w: %q", errUnsupportedMethod, req.Method)
	}
	return &req, nil
}

// EncodeResponse serialises a response envelope to the wire format.
func EncodeResponse(resp *Response) ([]byte, error) {
	return json.Marshal(resp)
}
