package stdinmute

// DataListener receives chunks read from an input device. Listeners run
// synchronously on the device's dispatch path: they must not block, and must
// not call back into a Suppressor attached to the same device.
type DataListener func(chunk []byte)

// Subscription identifies a registered data listener so it can be removed
// later. Handles are single-use: unsubscribing twice is harmless.
type Subscription struct {
	fn DataListener
}

// InputDevice is the input side of a terminal as the Suppressor sees it:
// flow control, raw mode toggling, and ordered data subscription.
//
// Flow state controls event delivery, not reading: a paused device withholds
// chunks from its listeners. Raw mode is the terminal driver's unprocessed
// input mode, where keystrokes arrive immediately without echo or line
// buffering.
type InputDevice interface {
	// IsTerminal reports whether the device is an interactive terminal.
	IsTerminal() bool

	// RawModeSupported reports whether SetRawMode can work on this platform.
	RawModeSupported() bool

	// IsRawMode reports whether raw mode is currently engaged.
	IsRawMode() bool

	// SetRawMode engages or releases raw mode. Enabling captures the prior
	// terminal state; disabling restores that exact state.
	SetRawMode(on bool) error

	// IsPaused reports whether the device is withholding data events.
	IsPaused() bool

	// Pause stops data delivery to listeners.
	Pause()

	// Resume starts data delivery, flushing anything withheld while paused.
	Resume()

	// SubscribeData registers a listener behind all current listeners.
	SubscribeData(fn DataListener) *Subscription

	// SubscribeDataFirst registers a listener ahead of all current listeners.
	// It sees every chunk first but does not prevent the others from also
	// receiving it.
	SubscribeDataFirst(fn DataListener) *Subscription

	// Unsubscribe removes a previously registered listener.
	Unsubscribe(sub *Subscription)
}
