//go:build unix

package stdinmute

import (
	"os"

	"golang.org/x/sys/unix"
)

// inputWaiter wakes a pump goroutine that is blocked waiting for input. It
// is a self-pipe: Pause writes a byte and the pump's select() returns
// without consuming anything from the input descriptor.
type inputWaiter struct {
	r, w     *os.File
	rfd, wfd int
}

func newInputWaiter() (*inputWaiter, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	iw := &inputWaiter{r: r, w: w, rfd: int(r.Fd()), wfd: int(w.Fd())}

	// Nonblocking on both ends: wake must never stall on a full pipe, and
	// drain must never stall on an empty one.
	_ = unix.SetNonblock(iw.rfd, true)
	_ = unix.SetNonblock(iw.wfd, true)
	return iw, nil
}

// wake unblocks a pending wait. Safe to call repeatedly.
func (iw *inputWaiter) wake() {
	_, _ = unix.Write(iw.wfd, []byte{0})
}

// drain empties the wake pipe after a wakeup was observed.
func (iw *inputWaiter) drain() {
	var buf [16]byte
	for {
		n, err := unix.Read(iw.rfd, buf[:])
		if n <= 0 || err != nil {
			return
		}
	}
}

// wait blocks until the input fd is readable or wake is called.
// Returns (ready, woken, err); EINTR reports neither and the caller retries.
func (iw *inputWaiter) wait(fd int) (ready, woken bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)
	readFds.Set(iw.rfd)

	maxFd := fd
	if iw.rfd > maxFd {
		maxFd = iw.rfd
	}

	n, err := unix.Select(maxFd+1, &readFds, nil, nil, nil)
	if err != nil {
		if err == unix.EINTR {
			return false, false, nil
		}
		return false, false, err
	}
	if n == 0 {
		return false, false, nil
	}

	if readFds.IsSet(iw.rfd) {
		iw.drain()
		return false, true, nil
	}
	return readFds.IsSet(fd), false, nil
}

func (iw *inputWaiter) close() error {
	err := iw.r.Close()
	if werr := iw.w.Close(); err == nil {
		err = werr
	}
	return err
}

// pumpLoop reads chunks while the device is flowing. It exits when the
// device is paused or closed, or when the descriptor reports EOF or an
// error; Resume starts a fresh pump.
func (d *StdinDevice) pumpLoop() {
	buf := make([]byte, 256)
	for {
		d.mu.Lock()
		if d.paused || d.closed {
			d.pumping = false
			d.mu.Unlock()
			return
		}
		w := d.waiter
		d.mu.Unlock()

		ready, woken, err := w.wait(d.fd)
		if err != nil {
			d.parkPump("wait: %v", err)
			return
		}
		if woken || !ready {
			continue
		}

		n, err := unix.Read(d.fd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil || n == 0 {
			d.parkPump("read: n=%d err=%v", n, err)
			return
		}

		chunk := make([]byte, n)
		copy(chunk, buf[:n])

		d.mu.Lock()
		if d.paused || d.closed {
			// Pause landed between the read and here: hold the chunk.
			d.pending = append(d.pending, chunk)
			d.pumping = false
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()

		d.listeners.dispatch(chunk)
	}
}
