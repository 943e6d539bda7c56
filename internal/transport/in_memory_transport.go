// file: internal/transport/in_memory_transport.go
package transport

import (
	"context"
	"sync"
)

// InMemoryTransport implements the Transport interface using in-memory channels.
// It exists for testing: two linked instances communicate without real I/O.
type InMemoryTransport struct {
	incoming  chan []byte
	outgoing  chan []byte
	closed    bool
	closeLock sync.RWMutex
	readLock  sync.Mutex
	writeLock sync.Mutex
}

// InMemoryTransportPair holds two linked InMemoryTransport instances.
// Messages written to one side can be read from the other.
type InMemoryTransportPair struct {
	ClientTransport *InMemoryTransport
	ServerTransport *InMemoryTransport
}

// NewInMemoryTransportPair creates a connected pair of in-memory transports,
// useful for exercising a server loop end to end in tests.
func NewInMemoryTransportPair() *InMemoryTransportPair {
	// Buffered so tests can enqueue several messages before the peer reads.
	clientToServer := make(chan []byte, 100)
	serverToClient := make(chan []byte, 100)

	return &InMemoryTransportPair{
		ClientTransport: &InMemoryTransport{
			incoming: serverToClient,
			outgoing: clientToServer,
		},
		ServerTransport: &InMemoryTransport{
			incoming: clientToServer,
			outgoing: serverToClient,
		},
	}
}

// ReadMessage implements Transport.ReadMessage.
func (t *InMemoryTransport) ReadMessage(ctx context.Context) ([]byte, error) {
	t.readLock.Lock()
	defer t.readLock.Unlock()

	t.closeLock.RLock()
	if t.closed {
		t.closeLock.RUnlock()
		return nil, NewClosedError("read")
	}
	t.closeLock.RUnlock()

	select {
	case <-ctx.Done():
		return nil, NewTimeoutError("read", ctx.Err())
	case msg, ok := <-t.incoming:
		if !ok {
			return nil, NewClosedError("read")
		}
		return msg, nil
	}
}

// WriteMessage implements Transport.WriteMessage.
func (t *InMemoryTransport) WriteMessage(ctx context.Context, message []byte) error {
	t.writeLock.Lock()
	defer t.writeLock.Unlock()

	t.closeLock.RLock()
	if t.closed {
		t.closeLock.RUnlock()
		return NewClosedError("write")
	}
	t.closeLock.RUnlock()

	if len(message) > MaxMessageSize {
		return NewMessageSizeError(len(message), MaxMessageSize)
	}

	select {
	case <-ctx.Done():
		return NewTimeoutError("write", ctx.Err())
	case t.outgoing <- message:
		return nil
	}
}

// Close implements Transport.Close. The outgoing channel is closed so the
// peer's pending reads unblock with a closed-transport error.
func (t *InMemoryTransport) Close() error {
	t.closeLock.Lock()
	defer t.closeLock.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	close(t.outgoing)
	return nil
}
