//go:build !linux || tinygo

package gpio

import "errors"

// RealBoard is not available on non-Linux platforms.
type RealBoard struct{}

// NewRealBoard returns an error on non-Linux platforms.
func NewRealBoard(pinLED, pinBuzzer, pinButton int) (*RealBoard, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// LED is not implemented on non-Linux platforms.
func (b *RealBoard) LED() OutputPin { return nil }

// Buzzer is not implemented on non-Linux platforms.
func (b *RealBoard) Buzzer() OutputPin { return nil }

// Button is not implemented on non-Linux platforms.
func (b *RealBoard) Button() InputPin { return nil }

// Close is not implemented on non-Linux platforms.
func (b *RealBoard) Close() error { return nil }
