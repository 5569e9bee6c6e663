package stdinmute

import (
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/grindlemire/go-stdinmute/internal/debug"
)

// StdinDevice is an InputDevice backed by a real file descriptor, normally
// the process's standard input.
//
// The device starts paused: no bytes are consumed from the descriptor until
// Resume is called. While flowing, a single pump goroutine reads the
// descriptor and hands each chunk to the subscribed listeners in order.
// Chunks that arrive around a Pause are withheld and delivered on the next
// Resume rather than dropped.
type StdinDevice struct {
	in *os.File
	fd int

	mu      sync.Mutex
	paused  bool
	pumping bool
	closed  bool
	pending [][]byte
	raw     *rawModeState
	rawOn   bool
	waiter  *inputWaiter

	listeners listenerList
}

// Ensure StdinDevice implements InputDevice.
var _ InputDevice = (*StdinDevice)(nil)

// NewDevice creates a device over the given file. The device starts paused.
// Most programs want the shared Stdin device instead; NewDevice exists for
// explicit wiring and for driving other descriptors, such as a pty.
func NewDevice(in *os.File) *StdinDevice {
	return &StdinDevice{
		in:     in,
		fd:     int(in.Fd()),
		paused: true,
	}
}

// IsTerminal reports whether the device is an interactive terminal.
func (d *StdinDevice) IsTerminal() bool {
	return term.IsTerminal(d.fd)
}

// RawModeSupported reports whether raw mode can be toggled on this platform.
func (d *StdinDevice) RawModeSupported() bool {
	return rawModeAvailable()
}

// IsRawMode reports whether this device has raw mode engaged. It reflects
// the device's own toggle bookkeeping, not termios changes made by other
// processes sharing the terminal.
func (d *StdinDevice) IsRawMode() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rawOn
}

// SetRawMode engages or releases raw mode. Enabling captures the current
// terminal state; disabling restores that exact captured state. Toggling to
// the current state is a no-op.
func (d *StdinDevice) SetRawMode(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if on == d.rawOn {
		return nil
	}
	if on {
		state, err := enableRawMode(d.fd)
		if err != nil {
			return err
		}
		d.raw = state
		d.rawOn = true
		return nil
	}

	err := disableRawMode(d.raw)
	d.raw = nil
	d.rawOn = false
	return err
}

// IsPaused reports whether the device is withholding data events.
func (d *StdinDevice) IsPaused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

// Pause stops data delivery. A chunk already read but not yet delivered is
// held and delivered on the next Resume.
func (d *StdinDevice) Pause() {
	d.mu.Lock()
	if d.paused || d.closed {
		d.mu.Unlock()
		return
	}
	d.paused = true
	w := d.waiter
	d.mu.Unlock()

	if w != nil {
		w.wake()
	}
}

// Resume starts (or restarts) data delivery, first flushing any chunks
// withheld while paused.
func (d *StdinDevice) Resume() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.paused = false
	if d.waiter == nil {
		w, err := newInputWaiter()
		if err != nil {
			d.mu.Unlock()
			debug.Log("StdinDevice.Resume: wake pipe unavailable: %v", err)
			return
		}
		d.waiter = w
	}
	startPump := !d.pumping
	if startPump {
		d.pumping = true
	}
	held := d.pending
	d.pending = nil
	d.mu.Unlock()

	// Withheld chunks go out before the pump can read anything newer.
	for _, chunk := range held {
		d.listeners.dispatch(chunk)
	}
	if startPump {
		go d.pumpLoop()
	}
}

// SubscribeData registers a listener that receives every chunk after all
// previously registered listeners.
func (d *StdinDevice) SubscribeData(fn DataListener) *Subscription {
	return d.listeners.add(fn, false)
}

// SubscribeDataFirst registers a listener ahead of every current listener.
func (d *StdinDevice) SubscribeDataFirst(fn DataListener) *Subscription {
	return d.listeners.add(fn, true)
}

// Unsubscribe removes a previously registered listener. Handles that were
// already removed are ignored.
func (d *StdinDevice) Unsubscribe(sub *Subscription) {
	d.listeners.remove(sub)
}

// Close stops the pump and releases the wake pipe. It does not close the
// underlying file. A closed device ignores Pause and Resume.
func (d *StdinDevice) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.paused = true
	w := d.waiter
	d.waiter = nil
	d.mu.Unlock()

	if w != nil {
		w.wake()
		return w.close()
	}
	return nil
}

// parkPump records that the pump goroutine has exited. Resume starts a
// fresh one.
func (d *StdinDevice) parkPump(format string, args ...any) {
	d.mu.Lock()
	d.pumping = false
	d.mu.Unlock()
	debug.Log("StdinDevice pump parked: "+format, args...)
}
