//go:build unix

package stdinmute

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// sendSignal delivers sig to pid at the OS level, so the default action runs
// if the process has no handler installed.
func sendSignal(pid int, sig os.Signal) error {
	s, ok := sig.(unix.Signal)
	if !ok {
		return fmt.Errorf("cannot send non-posix signal %v", sig)
	}
	return unix.Kill(pid, s)
}
