// Package debug provides optional file-based debug logging.
//
// When the STDINMUTE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op. The
// library never writes diagnostics to the terminal it is suppressing.
package debug
