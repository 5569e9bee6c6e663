package stdinmute

import (
	"os"

	"github.com/grindlemire/go-stdinmute/internal/debug"
)

// interruptByte is the ASCII "end of text" control code. With raw mode
// engaged the terminal driver no longer turns Ctrl+C into SIGINT; the
// keystroke arrives as this byte at the front of a chunk instead.
const interruptByte = 0x03

// interruptDetector watches raw input chunks for the interrupt byte and
// re-synthesizes SIGINT, so suppressing input never disables Ctrl+C.
type interruptDetector struct {
	signals SignalPort
}

// onChunk is the data listener installed at activation. It runs on every
// chunk the device delivers, so it does nothing beyond a byte comparison
// and, on a match, one signal dispatch.
func (det *interruptDetector) onChunk(chunk []byte) {
	if len(chunk) == 0 || chunk[0] != interruptByte {
		return
	}
	det.deliver(os.Interrupt)
}

// deliver re-synthesizes sig through one of two paths. With at least one
// handler registered, the in-process path lets the handler observe the
// signal normally. With none, only an OS-level send can trigger the default
// action; an in-process dispatch would silently swallow the interrupt.
func (det *interruptDetector) deliver(sig os.Signal) {
	if det.signals.HandlerCount(sig) > 0 {
		det.signals.Redispatch(sig)
		return
	}
	if err := det.signals.Send(det.signals.Pid(), sig); err != nil {
		debug.Log("interrupt send failed: %v", err)
	}
}
