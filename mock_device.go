package stdinmute

// MockDevice is an in-memory InputDevice for testing. It records every
// operation, mirrors the real device's flow semantics (chunks delivered
// while paused are withheld until Resume), and lets tests drive chunk
// delivery directly with Deliver.
//
// The zero value is not useful; use NewMockDevice. MockDevice is not safe
// for concurrent use: tests drive it from one goroutine.
type MockDevice struct {
	terminal     bool
	rawSupported bool
	rawOn        bool
	paused       bool
	pending      [][]byte
	rawErr       error

	listeners listenerList

	// Operation counters for verifying capture/restore sequences
	rawSetCount      int
	pauseCount       int
	resumeCount      int
	subscribeCount   int
	unsubscribeCount int
}

// Ensure MockDevice implements InputDevice.
var _ InputDevice = (*MockDevice)(nil)

// NewMockDevice creates a suppressible mock: an interactive terminal with
// raw mode support, paused, raw mode off.
func NewMockDevice() *MockDevice {
	return &MockDevice{
		terminal:     true,
		rawSupported: true,
		paused:       true,
	}
}

// IsTerminal reports the configured interactivity.
func (m *MockDevice) IsTerminal() bool {
	return m.terminal
}

// RawModeSupported reports the configured raw mode capability.
func (m *MockDevice) RawModeSupported() bool {
	return m.rawSupported
}

// IsRawMode reports whether raw mode is engaged.
func (m *MockDevice) IsRawMode() bool {
	return m.rawOn
}

// SetRawMode toggles raw mode, or fails with the error configured by
// FailRawMode.
func (m *MockDevice) SetRawMode(on bool) error {
	m.rawSetCount++
	if m.rawErr != nil {
		return m.rawErr
	}
	m.rawOn = on
	return nil
}

// IsPaused reports whether the device is withholding data events.
func (m *MockDevice) IsPaused() bool {
	return m.paused
}

// Pause stops data delivery.
func (m *MockDevice) Pause() {
	m.paused = true
	m.pauseCount++
}

// Resume starts data delivery, flushing chunks withheld while paused.
func (m *MockDevice) Resume() {
	m.paused = false
	m.resumeCount++

	held := m.pending
	m.pending = nil
	for _, chunk := range held {
		m.listeners.dispatch(chunk)
	}
}

// SubscribeData registers a listener behind all current listeners.
func (m *MockDevice) SubscribeData(fn DataListener) *Subscription {
	m.subscribeCount++
	return m.listeners.add(fn, false)
}

// SubscribeDataFirst registers a listener ahead of all current listeners.
func (m *MockDevice) SubscribeDataFirst(fn DataListener) *Subscription {
	m.subscribeCount++
	return m.listeners.add(fn, true)
}

// Unsubscribe removes a previously registered listener.
func (m *MockDevice) Unsubscribe(sub *Subscription) {
	m.unsubscribeCount++
	m.listeners.remove(sub)
}

// --- Test helper methods ---

// Deliver hands a chunk to the subscribed listeners in order. While the
// device is paused the chunk is withheld and delivered on the next Resume,
// matching the real device.
func (m *MockDevice) Deliver(chunk []byte) {
	if m.paused {
		m.pending = append(m.pending, chunk)
		return
	}
	m.listeners.dispatch(chunk)
}

// SetTerminal configures whether the device reports itself an interactive
// terminal.
func (m *MockDevice) SetTerminal(on bool) {
	m.terminal = on
}

// SetRawSupported configures whether the device reports raw mode support.
func (m *MockDevice) SetRawSupported(on bool) {
	m.rawSupported = on
}

// SetPaused sets the flow state directly, bypassing the counters, for test
// setup.
func (m *MockDevice) SetPaused(on bool) {
	m.paused = on
}

// FailRawMode makes subsequent SetRawMode calls return err. Pass nil to
// restore normal behavior.
func (m *MockDevice) FailRawMode(err error) {
	m.rawErr = err
}

// ListenerCount returns the number of registered listeners.
func (m *MockDevice) ListenerCount() int {
	return m.listeners.count()
}

// PendingCount returns the number of chunks withheld while paused.
func (m *MockDevice) PendingCount() int {
	return len(m.pending)
}

// RawSetCount returns the number of SetRawMode calls, including failed ones.
func (m *MockDevice) RawSetCount() int {
	return m.rawSetCount
}

// PauseCount returns the number of Pause calls.
func (m *MockDevice) PauseCount() int {
	return m.pauseCount
}

// ResumeCount returns the number of Resume calls.
func (m *MockDevice) ResumeCount() int {
	return m.resumeCount
}

// SubscribeCount returns the number of SubscribeData and SubscribeDataFirst
// calls.
func (m *MockDevice) SubscribeCount() int {
	return m.subscribeCount
}

// UnsubscribeCount returns the number of Unsubscribe calls.
func (m *MockDevice) UnsubscribeCount() int {
	return m.unsubscribeCount
}

// Reset restores the mock to its initial suppressible state and clears all
// listeners and counters.
func (m *MockDevice) Reset() {
	m.terminal = true
	m.rawSupported = true
	m.rawOn = false
	m.paused = true
	m.pending = nil
	m.rawErr = nil
	m.rawSetCount = 0
	m.pauseCount = 0
	m.resumeCount = 0
	m.subscribeCount = 0
	m.unsubscribeCount = 0
	m.listeners.clear()
}
