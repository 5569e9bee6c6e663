//go:build windows

package stdinmute

// inputWaiter is a no-op on Windows. The pump uses plain blocking reads, so
// Pause only flips the flow flag; a read already in flight delivers its
// chunk to the pending queue instead of being interrupted.
type inputWaiter struct{}

func newInputWaiter() (*inputWaiter, error) {
	return &inputWaiter{}, nil
}

func (iw *inputWaiter) wake() {}

func (iw *inputWaiter) close() error {
	return nil
}

// pumpLoop reads chunks while the device is flowing. The blocking read
// cannot be cancelled, so the goroutine keeps running across Pause and only
// exits on Close, EOF, or a read error.
func (d *StdinDevice) pumpLoop() {
	buf := make([]byte, 256)
	for {
		n, err := d.in.Read(buf)
		if err != nil || n == 0 {
			d.parkPump("read: n=%d err=%v", n, err)
			return
		}

		chunk := make([]byte, n)
		copy(chunk, buf[:n])

		d.mu.Lock()
		if d.closed {
			d.pumping = false
			d.mu.Unlock()
			return
		}
		if d.paused {
			d.pending = append(d.pending, chunk)
			d.mu.Unlock()
			continue
		}
		d.mu.Unlock()

		d.listeners.dispatch(chunk)
	}
}
