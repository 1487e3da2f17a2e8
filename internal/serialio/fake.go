package serialio

import (
	"errors"
	"time"
)

// Step is one scripted poll outcome. A step with Ready=false simulates an
// idle poll window; a Ready step delivers Data (or Err) on the next Read.
type Step struct {
	Ready bool
	Data  []byte
	Err   error
}

// Fake is a test double that returns scripted command input.
type Fake struct {
	// Steps are consumed by Poll/Read. An idle step is consumed by the
	// Poll that observes it; a ready step by the Read that follows.
	Steps []Step

	// Polls counts Poll calls.
	Polls int

	// Closed tracks if Close was called.
	Closed bool

	index int
}

// NewFake creates a Fake stream with the given script.
func NewFake(steps []Step) *Fake {
	return &Fake{Steps: steps}
}

// Poll reports the next scripted step. Once the script is exhausted every
// poll is idle.
func (f *Fake) Poll(timeout time.Duration) bool {
	f.Polls++
	if f.index >= len(f.Steps) {
		return false
	}
	st := f.Steps[f.index]
	if !st.Ready {
		f.index++
		return false
	}
	return true
}

// Read consumes the current ready step.
func (f *Fake) Read(max int) ([]byte, error) {
	if f.index >= len(f.Steps) {
		return nil, errors.New("read without pending input")
	}
	st := f.Steps[f.index]
	f.index++

	if st.Err != nil {
		return nil, st.Err
	}
	d := st.Data
	if len(d) > max {
		d = d[:max]
	}
	return d, nil
}

// Close marks the stream as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
