package stdinmute

import (
	"os"
	"os/signal"
	"runtime"
	"sync"
)

// SignalPort abstracts the process signal facilities the Suppressor needs:
// how many handlers are registered for a signal, and the two ways to deliver
// one. In-process redispatch reaches registered handlers through their
// normal path; an OS-level send preserves the default action (for SIGINT,
// process termination) when no handler exists to run.
type SignalPort interface {
	// HandlerCount returns the number of handlers currently registered for
	// sig through this port.
	HandlerCount(sig os.Signal) int

	// Redispatch delivers sig to every handler registered through this port.
	Redispatch(sig os.Signal)

	// Send delivers sig to the process pid at the OS level.
	Send(pid int, sig os.Signal) error

	// Pid returns the current process id.
	Pid() int

	// Platform returns the platform name, e.g. "linux" or "windows".
	Platform() string
}

// ProcessSignals is the real SignalPort. It wraps os/signal with per-channel
// bookkeeping: the standard library cannot report how many handlers exist
// for a signal, so registrations must flow through Notify and Stop here to
// be visible to HandlerCount and reachable by Redispatch. Handlers
// registered directly with os/signal are still served, through the OS-level
// Send path.
type ProcessSignals struct {
	mu   sync.Mutex
	regs map[chan<- os.Signal][]os.Signal
}

// Ensure ProcessSignals implements SignalPort.
var _ SignalPort = (*ProcessSignals)(nil)

// NewProcessSignals creates a signal port with no registrations.
func NewProcessSignals() *ProcessSignals {
	return &ProcessSignals{regs: make(map[chan<- os.Signal][]os.Signal)}
}

// Notify registers c for the given signals, exactly like signal.Notify, and
// records the registration. Unlike signal.Notify, at least one signal must
// be named; a call with none is ignored.
func (p *ProcessSignals) Notify(c chan<- os.Signal, sigs ...os.Signal) {
	if len(sigs) == 0 {
		return
	}
	signal.Notify(c, sigs...)

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, sig := range sigs {
		if !containsSignal(p.regs[c], sig) {
			p.regs[c] = append(p.regs[c], sig)
		}
	}
}

// Stop unregisters c for all signals, exactly like signal.Stop.
func (p *ProcessSignals) Stop(c chan<- os.Signal) {
	signal.Stop(c)

	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.regs, c)
}

// HandlerCount returns the number of channels registered for sig.
func (p *ProcessSignals) HandlerCount(sig os.Signal) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, sigs := range p.regs {
		if containsSignal(sigs, sig) {
			n++
		}
	}
	return n
}

// Redispatch delivers sig to every channel registered for it. Sends do not
// block: a channel with no buffer space misses the signal, the same
// discipline os/signal applies to real deliveries.
func (p *ProcessSignals) Redispatch(sig os.Signal) {
	p.mu.Lock()
	var targets []chan<- os.Signal
	for c, sigs := range p.regs {
		if containsSignal(sigs, sig) {
			targets = append(targets, c)
		}
	}
	p.mu.Unlock()

	for _, c := range targets {
		select {
		case c <- sig:
		default:
		}
	}
}

// Send delivers sig to pid through the operating system.
func (p *ProcessSignals) Send(pid int, sig os.Signal) error {
	return sendSignal(pid, sig)
}

// Pid returns the current process id.
func (p *ProcessSignals) Pid() int {
	return os.Getpid()
}

// Platform returns runtime.GOOS.
func (p *ProcessSignals) Platform() string {
	return runtime.GOOS
}

func containsSignal(sigs []os.Signal, sig os.Signal) bool {
	for _, s := range sigs {
		if s == sig {
			return true
		}
	}
	return false
}
