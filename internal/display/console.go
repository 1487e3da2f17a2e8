package display

import (
	"fmt"
	"io"
	"strings"
)

// Console renders display frames as single console lines. It stands in for
// the panel on a bench host that has no physical display attached.
type Console struct {
	out     io.Writer
	current []string
}

// NewConsole creates a console-backed display.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Clear blanks the pending frame.
func (c *Console) Clear() {
	c.current = nil
}

// DrawText appends a line to the pending frame. Position is ignored; lines
// are shown in draw order.
func (c *Console) DrawText(text string, x, y int) {
	c.current = append(c.current, text)
}

// Flush prints the pending frame as one line.
func (c *Console) Flush() error {
	_, err := fmt.Fprintf(c.out, "[display] %s\n", strings.Join(c.current, " | "))
	return err
}
