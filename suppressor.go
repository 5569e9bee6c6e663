package stdinmute

import (
	"sync"

	"github.com/grindlemire/go-stdinmute/internal/debug"
)

// Suppressor discards terminal echo and line processing of an input device
// while at least one caller holds it active, and restores the device to its
// exact prior state when the last caller releases it.
//
// Start and Stop nest. Only the first Start touches the device and only the
// matching last Stop restores it, so overlapping consumers (a spinner inside
// a larger progress display, say) compose without one caller's Stop
// clobbering terminal state for another. Both calls are synchronous, cheap,
// and never fail: on a device or platform that cannot be suppressed they
// quietly do nothing.
//
// While suppression is engaged, an interrupt detector is subscribed ahead of
// every other data listener on the device, watching for Ctrl+C in the raw
// input and re-synthesizing SIGINT. Listeners that were already on the
// device keep receiving every chunk.
type Suppressor struct {
	device  InputDevice
	signals SignalPort
	det     *interruptDetector

	// mu guards the counter and the captured state across the whole
	// engage/restore sequence; the check-then-act transitions are not
	// otherwise atomic.
	mu        sync.Mutex
	active    int
	captured  InputDevice
	sub       *Subscription
	wasPaused bool
	wasRaw    bool
}

// New creates a Suppressor. Without options it operates on the shared
// standard input device and the shared process signal port; tests and
// composition roots can substitute either.
func New(opts ...Option) *Suppressor {
	s := &Suppressor{}
	for _, opt := range opts {
		opt(s)
	}
	if s.device == nil {
		s.device = Stdin()
	}
	if s.signals == nil {
		s.signals = DefaultSignals()
	}
	s.det = &interruptDetector{signals: s.signals}
	return s
}

// Start engages suppression. Calls nest; only the transition from zero to
// one active caller mutates the device. Start never fails: if the device is
// not an interactive terminal, does not support raw mode, or the platform
// cannot suppress input, it records the caller and does nothing else.
func (s *Suppressor) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active++
	if s.active == 1 {
		s.activate()
	}
}

// Stop releases one Start. Calls beyond the number of outstanding Starts are
// no-ops. The transition from one active caller to zero restores the
// device's raw-mode and flow state to what the first Start observed.
func (s *Suppressor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == 0 {
		return
	}
	s.active--
	if s.active == 0 {
		s.deactivate()
	}
}

// Suppress runs fn with suppression engaged, releasing it when fn returns,
// including on panic.
func (s *Suppressor) Suppress(fn func()) {
	s.Start()
	defer s.Stop()
	fn()
}

// Active reports whether at least one Start is outstanding.
func (s *Suppressor) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active > 0
}

// Depth returns the number of outstanding Start calls.
func (s *Suppressor) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Engaged reports whether a real device suppression is in effect. It is
// false when Active is true but the device could not be suppressed.
func (s *Suppressor) Engaged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captured != nil
}

// activate runs on the zero-to-one transition with s.mu held. If any
// capability check or the raw mode toggle fails, no device is captured and
// the matching deactivate becomes a no-op.
func (s *Suppressor) activate() {
	if s.signals.Platform() == "windows" {
		debug.Log("suppression skipped: platform %q", s.signals.Platform())
		return
	}
	if !s.device.IsTerminal() || !s.device.RawModeSupported() {
		debug.Log("suppression skipped: terminal=%v rawSupported=%v",
			s.device.IsTerminal(), s.device.RawModeSupported())
		return
	}

	// Captured exactly once per span, consumed exactly once by deactivate.
	s.wasPaused = s.device.IsPaused()
	s.wasRaw = s.device.IsRawMode()

	if err := s.device.SetRawMode(true); err != nil {
		debug.Log("suppression skipped: raw mode: %v", err)
		return
	}

	// The detector must see every chunk before listeners that were already
	// on the device, without keeping them from firing.
	s.sub = s.device.SubscribeDataFirst(s.det.onChunk)
	s.captured = s.device

	// A paused device delivers nothing, including Ctrl+C. Resume so raw
	// bytes reach the detector; a device already flowing is left alone.
	if s.wasPaused {
		s.device.Resume()
	}

	debug.Log("suppression engaged: wasPaused=%v wasRaw=%v", s.wasPaused, s.wasRaw)
}

// deactivate runs on the one-to-zero transition with s.mu held.
func (s *Suppressor) deactivate() {
	if s.captured == nil {
		return
	}

	s.captured.Unsubscribe(s.sub)

	// The terminal can vanish mid-span (hangup, detached pty). Only touch
	// raw mode if the device still looks like one.
	if s.captured.IsTerminal() {
		if err := s.captured.SetRawMode(s.wasRaw); err != nil {
			debug.Log("raw mode restore failed: %v", err)
		}
	}

	if s.wasPaused {
		s.captured.Pause()
	} else {
		s.captured.Resume()
	}

	debug.Log("suppression released: restored paused=%v raw=%v", s.wasPaused, s.wasRaw)

	s.captured = nil
	s.sub = nil
	s.wasPaused = false
	s.wasRaw = false
}
