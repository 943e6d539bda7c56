// file: internal/transport/transport_test.go
package transport

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNDJSONTransport_ReadMessage_ReturnsOneLinePerCall verifies basic framing.
func TestNDJSONTransport_ReadMessage_ReturnsOneLinePerCall(t *testing.T) {
	input := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"a"}` + "\n" + `{"jsonrpc":"2.0","id":2,"method":"b"}` + "\n")
	tr := NewNDJSONTransport(input, io.Discard, nil, logging.GetNoopLogger())
	ctx := context.Background()

	first, err := tr.ReadMessage(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"method":"a"}`, string(first))

	second, err := tr.ReadMessage(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":2,"method":"b"}`, string(second))
}

// TestNDJSONTransport_ReadMessage_SkipsBlankLines verifies blank lines never
// reach the decoder.
func TestNDJSONTransport_ReadMessage_SkipsBlankLines(t *testing.T) {
	input := strings.NewReader("\n   \n" + `{"jsonrpc":"2.0","id":7,"method":"x"}` + "\n")
	tr := NewNDJSONTransport(input, io.Discard, nil, logging.GetNoopLogger())

	msg, err := tr.ReadMessage(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(msg), `"id":7`)
}

// TestNDJSONTransport_ReadMessage_EOFSignalsClosed verifies a terminated input
// stream is reported as a closed transport, wrapping io.EOF.
func TestNDJSONTransport_ReadMessage_EOFSignalsClosed(t *testing.T) {
	tr := NewNDJSONTransport(strings.NewReader(""), io.Discard, nil, logging.GetNoopLogger())

	_, err := tr.ReadMessage(context.Background())
	require.Error(t, err)
	assert.True(t, IsClosedError(err), "EOF should surface as a closed-transport error.")
	assert.True(t, errors.Is(err, io.EOF), "The io.EOF cause should remain inspectable.")
}

// TestNDJSONTransport_WriteMessage_AppendsNewlineAndFlushes verifies framing
// and synchronous flushing of responses.
func TestNDJSONTransport_WriteMessage_AppendsNewlineAndFlushes(t *testing.T) {
	var out bytes.Buffer
	tr := NewNDJSONTransport(strings.NewReader(""), &out, nil, logging.GetNoopLogger())

	err := tr.WriteMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
	require.NoError(t, err)

	// Flushed immediately, terminated by exactly one newline.
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"result":{}}`+"\n", out.String())
}

// TestNDJSONTransport_WriteMessage_RejectsOversizedMessage verifies the size cap.
func TestNDJSONTransport_WriteMessage_RejectsOversizedMessage(t *testing.T) {
	var out bytes.Buffer
	tr := NewNDJSONTransport(strings.NewReader(""), &out, nil, logging.GetNoopLogger())

	big := bytes.Repeat([]byte("x"), MaxMessageSize+1)
	err := tr.WriteMessage(context.Background(), big)

	var te *Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ErrMessageTooLarge, te.Code)
	assert.Zero(t, out.Len(), "Nothing should be written for an oversized message.")
}

// TestNDJSONTransport_Operations_FailAfterClose verifies closed-transport behavior.
func TestNDJSONTransport_Operations_FailAfterClose(t *testing.T) {
	tr := NewNDJSONTransport(strings.NewReader(""), io.Discard, nil, logging.GetNoopLogger())
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close(), "Double close should be a no-op.")

	_, err := tr.ReadMessage(context.Background())
	assert.True(t, IsClosedError(err))

	err = tr.WriteMessage(context.Background(), []byte("{}"))
	assert.True(t, IsClosedError(err))
}

// TestNDJSONTransport_ReadMessage_HonorsContextCancellation verifies a blocked
// read unblocks when the context ends.
func TestNDJSONTransport_ReadMessage_HonorsContextCancellation(t *testing.T) {
	blocked, _ := io.Pipe() // Never written, so reads block forever.
	tr := NewNDJSONTransport(blocked, io.Discard, nil, logging.GetNoopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := tr.ReadMessage(ctx)
	var te *Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ErrReadTimeout, te.Code)
}

// TestInMemoryTransportPair_MessagesCrossBetweenSides verifies the test fixture itself.
func TestInMemoryTransportPair_MessagesCrossBetweenSides(t *testing.T) {
	pair := NewInMemoryTransportPair()
	ctx := context.Background()

	require.NoError(t, pair.ClientTransport.WriteMessage(ctx, []byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)))

	got, err := pair.ServerTransport.ReadMessage(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"method":"ping"`)

	require.NoError(t, pair.ServerTransport.WriteMessage(ctx, []byte(`{"jsonrpc":"2.0","id":1,"result":{}}`)))
	got, err = pair.ClientTransport.ReadMessage(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"result"`)
}

// TestInMemoryTransport_CloseUnblocksPeerRead verifies shutdown propagation.
func TestInMemoryTransport_CloseUnblocksPeerRead(t *testing.T) {
	pair := NewInMemoryTransportPair()
	require.NoError(t, pair.ClientTransport.Close())

	_, err := pair.ServerTransport.ReadMessage(context.Background())
	assert.True(t, IsClosedError(err), "Peer read should fail once the other side closes.")
}
