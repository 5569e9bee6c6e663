package stdinmute

// Option configures a Suppressor at construction time.
type Option func(*Suppressor)

// WithDevice sets the input device to suppress. The default is the shared
// standard input device. A nil device is ignored.
func WithDevice(device InputDevice) Option {
	return func(s *Suppressor) {
		if device != nil {
			s.device = device
		}
	}
}

// WithSignalPort sets the signal facility used to re-synthesize interrupts.
// The default is the shared process signal port. A nil port is ignored.
func WithSignalPort(signals SignalPort) Option {
	return func(s *Suppressor) {
		if signals != nil {
			s.signals = signals
		}
	}
}
