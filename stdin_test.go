//go:build unix

package stdinmute

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeDevice returns a device reading the read end of a pipe, plus the
// write end for the test to feed.
func pipeDevice(t *testing.T) (*StdinDevice, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	d := NewDevice(r)
	t.Cleanup(func() {
		d.Close()
		r.Close()
		w.Close()
	})
	return d, w
}

func waitChunk(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()
	select {
	case chunk := <-ch:
		return chunk
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a chunk")
		return nil
	}
}

func TestStdinDevice_StartsPaused(t *testing.T) {
	d, _ := pipeDevice(t)

	assert.True(t, d.IsPaused())
	assert.False(t, d.IsRawMode())
}

func TestStdinDevice_PipeIsNotATerminal(t *testing.T) {
	d, _ := pipeDevice(t)

	assert.False(t, d.IsTerminal())
	assert.True(t, d.RawModeSupported())
}

func TestStdinDevice_PumpDeliversChunks(t *testing.T) {
	d, w := pipeDevice(t)
	got := make(chan []byte, 4)
	d.SubscribeData(func(chunk []byte) { got <- chunk })

	d.Resume()
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, []byte("hello"), waitChunk(t, got))
}

func TestStdinDevice_PauseWithholdsInput(t *testing.T) {
	d, w := pipeDevice(t)
	got := make(chan []byte, 4)
	d.SubscribeData(func(chunk []byte) { got <- chunk })

	d.Resume()
	_, err := w.Write([]byte("one"))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), waitChunk(t, got))

	d.Pause()
	require.True(t, d.IsPaused())
	_, err = w.Write([]byte("two"))
	require.NoError(t, err)

	select {
	case chunk := <-got:
		t.Fatalf("received %q while paused", chunk)
	case <-time.After(100 * time.Millisecond):
	}

	d.Resume()
	assert.Equal(t, []byte("two"), waitChunk(t, got))
}

func TestStdinDevice_SubscriberOrdering(t *testing.T) {
	d, w := pipeDevice(t)
	var mu sync.Mutex
	var order []string
	done := make(chan struct{}, 1)

	d.SubscribeData(func([]byte) {
		mu.Lock()
		order = append(order, "existing")
		mu.Unlock()
	})
	d.SubscribeDataFirst(func([]byte) {
		mu.Lock()
		order = append(order, "first")
		mu.Unlock()
	})
	d.SubscribeData(func([]byte) {
		mu.Lock()
		order = append(order, "last")
		mu.Unlock()
		done <- struct{}{}
	})

	d.Resume()
	_, err := w.Write([]byte("x"))
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("chunk was not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "existing", "last"}, order)
}

func TestStdinDevice_Unsubscribe(t *testing.T) {
	d, w := pipeDevice(t)
	got := make(chan []byte, 4)
	var removed atomic.Int32

	sub := d.SubscribeData(func([]byte) { removed.Add(1) })
	d.SubscribeData(func(chunk []byte) { got <- chunk })
	d.Unsubscribe(sub)

	d.Resume()
	_, err := w.Write([]byte("x"))
	require.NoError(t, err)

	waitChunk(t, got)
	assert.Equal(t, int32(0), removed.Load())
}

func TestStdinDevice_EOFStopsPump(t *testing.T) {
	d, w := pipeDevice(t)
	got := make(chan []byte, 4)
	d.SubscribeData(func(chunk []byte) { got <- chunk })

	d.Resume()
	_, err := w.Write([]byte("tail"))
	require.NoError(t, err)
	assert.Equal(t, []byte("tail"), waitChunk(t, got))

	require.NoError(t, w.Close())

	// The pump exits on EOF; the device itself stays usable.
	time.Sleep(50 * time.Millisecond)
	assert.False(t, d.IsPaused())
}

func TestStdinDevice_CloseStopsDelivery(t *testing.T) {
	d, w := pipeDevice(t)
	got := make(chan []byte, 4)
	d.SubscribeData(func(chunk []byte) { got <- chunk })

	d.Resume()
	_, err := w.Write([]byte("a"))
	require.NoError(t, err)
	waitChunk(t, got)

	require.NoError(t, d.Close())
	assert.True(t, d.IsPaused())

	// Pause and Resume after Close are ignored.
	d.Resume()
	assert.True(t, d.IsPaused())
	require.NoError(t, d.Close())
}

func TestStdinDevice_RawModeRequiresTerminal(t *testing.T) {
	d, _ := pipeDevice(t)

	err := d.SetRawMode(true)
	require.Error(t, err, "raw mode on a pipe must fail")
	assert.False(t, d.IsRawMode())

	// Disabling when never enabled is a no-op.
	require.NoError(t, d.SetRawMode(false))
}
