//go:build !tinygo

package serialio

import (
	"io"
	"os"
	"time"
)

// Stdin is a command stream backed by standard input, for bench use when
// no serial console is attached. A single reader goroutine feeds a channel
// so the control loop itself stays free of blocking reads; the loop only
// ever touches the channel through the timed Poll.
type Stdin struct {
	ch      chan byte
	pending []byte
	closed  bool
}

// NewStdin creates a stdin-backed stream and starts its reader.
func NewStdin() *Stdin {
	s := &Stdin{ch: make(chan byte, 64)}
	go s.read(os.Stdin)
	return s
}

func (s *Stdin) read(r io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.ch <- buf[0]
		}
		if err != nil {
			close(s.ch)
			return
		}
	}
}

// Poll waits at most timeout for a byte.
func (s *Stdin) Poll(timeout time.Duration) bool {
	if len(s.pending) > 0 {
		return true
	}
	if s.closed {
		return false
	}

	select {
	case b, ok := <-s.ch:
		if !ok {
			s.closed = true
			return false
		}
		s.pending = append(s.pending, b)
		return true
	case <-time.After(timeout):
		return false
	}
}

// Read returns up to max pending bytes, draining anything already queued.
func (s *Stdin) Read(max int) ([]byte, error) {
	if s.closed && len(s.pending) == 0 {
		return nil, io.EOF
	}

	out := make([]byte, 0, max)
	n := len(s.pending)
	if n > max {
		n = max
	}
	out = append(out, s.pending[:n]...)
	s.pending = s.pending[n:]

	for len(out) < max {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return out, nil
			}
			out = append(out, b)
		default:
			return out, nil
		}
	}
	return out, nil
}

// Close is a no-op; stdin belongs to the process.
func (s *Stdin) Close() error { return nil }
