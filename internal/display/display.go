// Package display formats the node's status into frames for the pixel
// display. The Presenter is the only component that touches the display
// capability.
package display

// Display is the pixel-display capability: a small frame-buffered screen
// that is cleared, drawn into, then flushed as one frame.
type Display interface {
	// Clear blanks the frame buffer.
	Clear()

	// DrawText places a text line at pixel position (x, y).
	DrawText(text string, x, y int)

	// Flush pushes the buffered frame to the panel.
	Flush() error
}
