// Package serialio provides the operator command stream: a character input
// that can be polled with a timeout. The real implementation reads a serial
// port; a stdin-backed stream and a scripted fake exist for bench use and
// tests.
package serialio

import "time"

// CommandStream is a character input with a non-blocking timed poll.
type CommandStream interface {
	// Poll reports whether input is ready, waiting at most timeout.
	Poll(timeout time.Duration) bool

	// Read returns up to max bytes of pending input.
	Read(max int) ([]byte, error)

	// Close releases the stream.
	Close() error
}
