// Package gpio provides the pin capabilities of the board with hardware
// abstraction. The real implementation uses the Linux GPIO character
// device; fakes allow testing without hardware.
package gpio

// OutputPin drives one digital output (LED or buzzer). Writes take effect
// immediately on hardware; the pin is live state, not a buffer.
type OutputPin interface {
	// Set drives the pin high (on) or low (off).
	Set(on bool) error

	// Get returns the last commanded state.
	Get() bool
}

// InputPin reads one digital input (the mode button, pulled high,
// active-low).
type InputPin interface {
	// Read returns true when the line is high.
	Read() (bool, error)
}

// Default pin numbers, matching the board layout.
const (
	DefaultPinLED    = 25
	DefaultPinBuzzer = 16
	DefaultPinButton = 14
)
