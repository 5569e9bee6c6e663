//go:build unix

package stdinmute

import "golang.org/x/term"

// rawModeState stores the terminal state captured before entering raw mode
// so the exact same state can be restored on exit.
type rawModeState struct {
	fd    int
	prior *term.State
}

// enableRawMode puts the terminal into raw mode and returns the previous
// state for restoration.
func enableRawMode(fd int) (*rawModeState, error) {
	prior, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawModeState{fd: fd, prior: prior}, nil
}

// disableRawMode restores the terminal to the captured state.
func disableRawMode(state *rawModeState) error {
	if state == nil {
		return nil
	}
	return term.Restore(state.fd, state.prior)
}

// rawModeAvailable reports whether raw mode toggling is supported here.
func rawModeAvailable() bool {
	return true
}
