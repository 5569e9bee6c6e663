package stdinmute

import (
	"os"
	"sync"
)

var (
	stdinOnce   sync.Once
	stdinDevice *StdinDevice

	signalsOnce sync.Once
	signalsPort *ProcessSignals

	defaultOnce sync.Once
	defaultSupp *Suppressor
)

// Stdin returns the process-wide device over os.Stdin. Standard input is a
// single shared resource, so every suppressor and caller in the process
// should use this one instance; flow state and subscriptions then compose.
func Stdin() *StdinDevice {
	stdinOnce.Do(func() {
		stdinDevice = NewDevice(os.Stdin)
	})
	return stdinDevice
}

// DefaultSignals returns the process-wide signal port. Programs that handle
// SIGINT themselves should register through it rather than os/signal
// directly, so an engaged suppressor sees the handler and delivers Ctrl+C
// in-process instead of killing the process.
func DefaultSignals() *ProcessSignals {
	signalsOnce.Do(func() {
		signalsPort = NewProcessSignals()
	})
	return signalsPort
}

// Default returns the process-wide Suppressor over Stdin and DefaultSignals.
func Default() *Suppressor {
	defaultOnce.Do(func() {
		defaultSupp = New()
	})
	return defaultSupp
}

// Start engages suppression on the default Suppressor. Safe to call even
// when standard input is not a terminal.
func Start() {
	Default().Start()
}

// Stop releases one Start on the default Suppressor. Safe to call without a
// matching Start.
func Stop() {
	Default().Stop()
}

// Suppress runs fn with the default Suppressor engaged.
func Suppress(fn func()) {
	Default().Suppress(fn)
}
