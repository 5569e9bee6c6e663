//go:build windows

package stdinmute

import (
	"errors"
	"os"
)

// sendSignal is unavailable on Windows. The Suppressor never activates
// there, so this path is unreachable through normal use.
func sendSignal(pid int, sig os.Signal) error {
	return errors.New("os-level signal delivery not supported on this platform")
}
