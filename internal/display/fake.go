package display

// Text is one positioned line in a frame.
type Text struct {
	S string
	X int
	Y int
}

// Fake records rendered frames for test assertions.
type Fake struct {
	// Frames contains one entry per Flush, each the texts drawn since the
	// preceding Clear.
	Frames [][]Text

	// FlushError, if set, will be returned by Flush.
	FlushError error

	// Clears counts Clear calls.
	Clears int

	current []Text
}

// NewFake creates a Fake display.
func NewFake() *Fake {
	return &Fake{}
}

// Clear blanks the pending frame.
func (f *Fake) Clear() {
	f.Clears++
	f.current = nil
}

// DrawText records a positioned line in the pending frame.
func (f *Fake) DrawText(text string, x, y int) {
	f.current = append(f.current, Text{S: text, X: x, Y: y})
}

// Flush commits the pending frame.
func (f *Fake) Flush() error {
	if f.FlushError != nil {
		return f.FlushError
	}
	frame := make([]Text, len(f.current))
	copy(frame, f.current)
	f.Frames = append(f.Frames, frame)
	return nil
}

// LastFrame returns the most recently flushed frame, or nil.
func (f *Fake) LastFrame() []Text {
	if len(f.Frames) == 0 {
		return nil
	}
	return f.Frames[len(f.Frames)-1]
}
