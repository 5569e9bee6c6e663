package stdinmute

import (
	"os"
	"sync"
)

// SentSignal records one OS-level delivery request made through a
// MockSignalPort.
type SentSignal struct {
	Pid int
	Sig os.Signal
}

// MockSignalPort is an in-memory SignalPort for testing interrupt delivery
// without touching the real process signal table. It reports "linux" and a
// fixed pid by default, counts handlers from a configurable table, and
// records every delivery on both paths.
//
// Unlike MockDevice, it is safe for concurrent use: deliveries arrive on a
// real device's dispatch goroutine while the test inspects them.
type MockSignalPort struct {
	mu       sync.Mutex
	platform string
	pid      int
	handlers map[os.Signal]int
	sendErr  error

	redispatched []os.Signal
	sent         []SentSignal
}

// Ensure MockSignalPort implements SignalPort.
var _ SignalPort = (*MockSignalPort)(nil)

// NewMockSignalPort creates a mock port on a suppressible platform with no
// registered handlers.
func NewMockSignalPort() *MockSignalPort {
	return &MockSignalPort{
		platform: "linux",
		pid:      4242,
		handlers: make(map[os.Signal]int),
	}
}

// HandlerCount returns the configured handler count for sig.
func (m *MockSignalPort) HandlerCount(sig os.Signal) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handlers[sig]
}

// Redispatch records an in-process delivery of sig.
func (m *MockSignalPort) Redispatch(sig os.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.redispatched = append(m.redispatched, sig)
}

// Send records an OS-level delivery of sig to pid, or fails with the error
// configured by FailSend.
func (m *MockSignalPort) Send(pid int, sig os.Signal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, SentSignal{Pid: pid, Sig: sig})
	return nil
}

// Pid returns the configured process id.
func (m *MockSignalPort) Pid() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pid
}

// Platform returns the configured platform name.
func (m *MockSignalPort) Platform() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.platform
}

// --- Test helper methods ---

// SetPlatform configures the reported platform name.
func (m *MockSignalPort) SetPlatform(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.platform = name
}

// SetPid configures the reported process id.
func (m *MockSignalPort) SetPid(pid int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pid = pid
}

// SetHandlerCount configures the handler count reported for sig.
func (m *MockSignalPort) SetHandlerCount(sig os.Signal, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[sig] = n
}

// FailSend makes subsequent Send calls return err. Pass nil to restore
// normal behavior.
func (m *MockSignalPort) FailSend(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

// Redispatched returns a copy of the in-process deliveries, in order.
func (m *MockSignalPort) Redispatched() []os.Signal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]os.Signal(nil), m.redispatched...)
}

// Sent returns a copy of the OS-level deliveries, in order.
func (m *MockSignalPort) Sent() []SentSignal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentSignal(nil), m.sent...)
}

// Reset clears the recorded deliveries, the handler table, and any
// configured failure, keeping platform and pid.
func (m *MockSignalPort) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = make(map[os.Signal]int)
	m.sendErr = nil
	m.redispatched = nil
	m.sent = nil
}
