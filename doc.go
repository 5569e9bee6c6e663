// Package stdinmute suppresses terminal echo and line processing of standard
// input while a long-running foreground operation (such as a spinner or
// progress indicator) is active, without breaking Ctrl+C.
//
// Callers bracket the operation with Start and Stop. Calls nest: only the
// first Start puts the terminal into raw mode and only the matching last
// Stop restores it, so overlapping consumers compose safely. While
// suppression is engaged, keystrokes are swallowed instead of corrupting
// output, and a detector watches the raw input stream for Ctrl+C and
// re-synthesizes the interrupt signal the terminal would otherwise have
// delivered.
//
// On a non-interactive input, or on a platform without raw mode support,
// Start and Stop quietly do nothing. Suppression is best-effort terminal
// ergonomics, never a failure mode.
package stdinmute
