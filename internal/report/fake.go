package report

import (
	"fmt"
	"strings"
)

// Fake records reported lines for test assertions.
type Fake struct {
	// Lines contains every reported line, in order.
	Lines []string
}

// NewFake creates a Fake reporter.
func NewFake() *Fake {
	return &Fake{}
}

// Line records the formatted line.
func (f *Fake) Line(format string, args ...any) {
	f.Lines = append(f.Lines, fmt.Sprintf(format, args...))
}

// Contains reports whether any recorded line contains the substring.
func (f *Fake) Contains(substr string) bool {
	for _, l := range f.Lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// Reset discards recorded lines.
func (f *Fake) Reset() {
	f.Lines = nil
}
