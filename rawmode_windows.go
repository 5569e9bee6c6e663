//go:build windows

package stdinmute

import "errors"

// rawModeState is never populated on Windows; suppression is disabled there
// and the Suppressor degrades to a no-op.
type rawModeState struct{}

var errRawModeUnsupported = errors.New("raw mode not supported on this platform")

func enableRawMode(fd int) (*rawModeState, error) {
	return nil, errRawModeUnsupported
}

func disableRawMode(state *rawModeState) error {
	return nil
}

func rawModeAvailable() bool {
	return false
}
