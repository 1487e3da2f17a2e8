//go:build !tinygo

package serialio

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the standard rate for the command console.
const DefaultBaudRate = 115200

// drainTimeout bounds the wait for bytes that trail the first one, e.g.
// the newline after a command character.
const drainTimeout = 20 * time.Millisecond

// Serial is a command stream backed by a serial port.
type Serial struct {
	port    serial.Port
	pending []byte
}

// OpenSerial opens the named port for command input.
func OpenSerial(portName string, baudRate int) (*Serial, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}

	port, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}

	return &Serial{port: port}, nil
}

// Poll waits at most timeout for input. A byte that arrives during the
// poll is kept pending for the next Read.
func (s *Serial) Poll(timeout time.Duration) bool {
	if len(s.pending) > 0 {
		return true
	}

	if err := s.port.SetReadTimeout(timeout); err != nil {
		return false
	}
	buf := make([]byte, 1)
	n, err := s.port.Read(buf)
	if err != nil || n == 0 {
		return false
	}

	s.pending = append(s.pending, buf[:n]...)
	return true
}

// Read returns up to max bytes: anything pending from the poll plus
// whatever trails it within the drain window.
func (s *Serial) Read(max int) ([]byte, error) {
	buf := make([]byte, max)
	n := copy(buf, s.pending)
	s.pending = s.pending[n:]

	if n < max {
		if err := s.port.SetReadTimeout(drainTimeout); err != nil {
			return nil, fmt.Errorf("set read timeout: %w", err)
		}
		m, err := s.port.Read(buf[n:])
		if err != nil && n == 0 {
			return nil, fmt.Errorf("read serial port: %w", err)
		}
		n += m
	}

	return buf[:n], nil
}

// Close closes the port.
func (s *Serial) Close() error {
	return s.port.Close()
}
