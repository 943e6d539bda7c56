// Package transport defines interfaces and implementations for carrying
// newline-delimited JSON-RPC messages between an MCP server and its peer.
package transport

// file: internal/transport/transport.go

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/simplemcp/simplemcp/internal/logging"
)

// MaxMessageSize defines the maximum allowed size for a single message in bytes.
// This guards the line reader against memory exhaustion.
const MaxMessageSize = 1024 * 1024 // 1MB.

// Transport defines the interface for sending and receiving raw JSON-RPC messages.
// The transport deals purely in framing: one message per line, no interpretation
// of the bytes. Syntax and protocol errors are the dispatcher's concern, so that
// a malformed line can still be answered with a JSON-RPC parse error.
type Transport interface {
	// ReadMessage reads a single message from the transport. Blank lines are
	// skipped. It returns the raw message bytes, or an error if reading fails.
	ReadMessage(ctx context.Context) ([]byte, error)

	// WriteMessage sends a single message over the transport, appending the
	// line delimiter and flushing so a line-buffered peer observes it immediately.
	WriteMessage(ctx context.Context, message []byte) error

	// Close shuts down the transport, closing any underlying streams.
	Close() error
}

// NDJSONTransport implements Transport for newline-delimited JSON over a pair
// of byte streams, typically the process's stdin and stdout.
type NDJSONTransport struct {
	reader    *bufio.Reader
	writer    *bufio.Writer
	closer    io.Closer
	logger    logging.Logger
	writeLock sync.Mutex
	closed    bool
	closeLock sync.RWMutex
}

// NewNDJSONTransport creates a transport that reads NDJSON messages from reader
// and writes them to writer. closer, if non-nil, is closed by Close.
func NewNDJSONTransport(reader io.Reader, writer io.Writer, closer io.Closer, logger logging.Logger) *NDJSONTransport {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &NDJSONTransport{
		reader: bufio.NewReader(reader),
		writer: bufio.NewWriter(writer),
		closer: closer,
		logger: logger.WithField("component", "ndjson_transport"),
	}
}

// ReadMessage implements Transport.ReadMessage. It reads lines until a
// non-blank one is found, honoring context cancellation.
func (t *NDJSONTransport) ReadMessage(ctx context.Context) ([]byte, error) {
	t.closeLock.RLock()
	if t.closed {
		t.closeLock.RUnlock()
		return nil, NewClosedError("read")
	}
	t.closeLock.RUnlock()

	type readResult struct {
		data []byte
		err  error
	}
	resultCh := make(chan readResult, 1)

	// Read in a separate goroutine so a canceled context unblocks the caller.
	go func() {
		for {
			line, err := t.readLine()
			if err != nil {
				resultCh <- readResult{nil, err}
				return
			}
			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				// Blank line between messages, keep reading.
				continue
			}
			t.logger.Debug("Received raw message.", "size", len(line))
			resultCh <- readResult{line, nil}
			return
		}
	}()

	select {
	case <-ctx.Done():
		t.logger.Debug("Context ended while reading message.", "error", ctx.Err())
		return nil, NewTimeoutError("read", ctx.Err())
	case result := <-resultCh:
		return result.data, result.err
	}
}

// readLine accumulates a full line from the buffered reader, enforcing the
// size cap across continuation fragments.
func (t *NDJSONTransport) readLine() ([]byte, error) {
	var buffer bytes.Buffer
	for {
		fragment, prefix, err := t.reader.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil, NewError(ErrTransportClosed, "connection closed by peer", io.EOF)
			}
			return nil, NewError(ErrGeneric, "failed to read message line", err)
		}
		buffer.Write(fragment)
		if buffer.Len() > MaxMessageSize {
			return nil, NewMessageSizeError(buffer.Len(), MaxMessageSize)
		}
		if !prefix {
			return buffer.Bytes(), nil
		}
	}
}

// WriteMessage implements Transport.WriteMessage. The message is written as a
// single line and flushed synchronously.
func (t *NDJSONTransport) WriteMessage(ctx context.Context, message []byte) error {
	t.closeLock.RLock()
	if t.closed {
		t.closeLock.RUnlock()
		return NewClosedError("write")
	}
	t.closeLock.RUnlock()

	if len(message) > MaxMessageSize {
		return NewMessageSizeError(len(message), MaxMessageSize)
	}
	if err := ctx.Err(); err != nil {
		return NewTimeoutError("write", err)
	}

	t.writeLock.Lock()
	defer t.writeLock.Unlock()

	if _, err := t.writer.Write(message); err != nil {
		return NewError(ErrGeneric, "failed to write message", err)
	}
	if err := t.writer.WriteByte('\n'); err != nil {
		return NewError(ErrGeneric, "failed to write message delimiter", err)
	}
	if err := t.writer.Flush(); err != nil {
		return NewError(ErrGeneric, "failed to flush message", err)
	}
	t.logger.Debug("Wrote message.", "size", len(message)+1)
	return nil
}

// Close implements Transport.Close.
func (t *NDJSONTransport) Close() error {
	t.closeLock.Lock()
	defer t.closeLock.Unlock()

	if t.closed {
		return nil
	}
	t.logger.Debug("Closing NDJSON transport.")
	t.closed = true

	if t.closer != nil {
		if err := t.closer.Close(); err != nil {
			return NewError(ErrTransportClosed, "failed to close underlying stream", err)
		}
	}
	return nil
}
