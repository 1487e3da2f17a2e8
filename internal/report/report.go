// Package report emits the operator-facing console lines: readings, mode
// changes, actuator changes and errors. The interface exists so tests can
// assert on every line the loop produces.
package report

import (
	"fmt"
	"io"
)

// Reporter writes human-readable status lines. It is a console surface for
// an operator, not a structured protocol.
type Reporter interface {
	// Line writes one formatted line.
	Line(format string, args ...any)
}

// Console writes lines to the given writer, typically os.Stdout.
type Console struct {
	out io.Writer
}

// NewConsole creates a console reporter.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Line writes one formatted line followed by a newline.
func (c *Console) Line(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
	fmt.Fprintln(c.out)
}
