//go:build linux && !tinygo

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealBoard owns the GPIO lines on actual hardware.
type RealBoard struct {
	chip   *gpiocdev.Chip
	led    *RealOutput
	buzzer *RealOutput
	button *RealInput
}

// RealOutput drives one output line.
type RealOutput struct {
	line  *gpiocdev.Line
	state bool
}

// RealInput reads one input line.
type RealInput struct {
	line *gpiocdev.Line
}

// NewRealBoard requests the LED and buzzer lines as outputs (initially low)
// and the button line as a pulled-up input.
func NewRealBoard(pinLED, pinBuzzer, pinButton int) (*RealBoard, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	ledLine, err := chip.RequestLine(pinLED, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request LED pin %d: %w", pinLED, err)
	}

	buzzerLine, err := chip.RequestLine(pinBuzzer, gpiocdev.AsOutput(0))
	if err != nil {
		ledLine.Close()
		chip.Close()
		return nil, fmt.Errorf("request buzzer pin %d: %w", pinBuzzer, err)
	}

	// Pull-up so the idle line reads high; a press pulls it to ground.
	buttonLine, err := chip.RequestLine(pinButton, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		buzzerLine.Close()
		ledLine.Close()
		chip.Close()
		return nil, fmt.Errorf("request button pin %d: %w", pinButton, err)
	}

	return &RealBoard{
		chip:   chip,
		led:    &RealOutput{line: ledLine},
		buzzer: &RealOutput{line: buzzerLine},
		button: &RealInput{line: buttonLine},
	}, nil
}

// LED returns the LED output pin.
func (b *RealBoard) LED() OutputPin { return b.led }

// Buzzer returns the buzzer output pin.
func (b *RealBoard) Buzzer() OutputPin { return b.buzzer }

// Button returns the button input pin.
func (b *RealBoard) Button() InputPin { return b.button }

// Close drives both outputs low and releases all lines.
func (b *RealBoard) Close() error {
	var errs []error

	for _, out := range []*RealOutput{b.led, b.buzzer} {
		if out == nil || out.line == nil {
			continue
		}
		if err := out.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("lower output: %w", err))
		}
		if err := out.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close output: %w", err))
		}
	}
	if b.button != nil && b.button.line != nil {
		if err := b.button.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button: %w", err))
		}
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// Set drives the line and remembers the commanded state.
func (o *RealOutput) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := o.line.SetValue(v); err != nil {
		return fmt.Errorf("set output: %w", err)
	}
	o.state = on
	return nil
}

// Get returns the last commanded state.
func (o *RealOutput) Get() bool { return o.state }

// Read returns true when the line is high.
func (i *RealInput) Read() (bool, error) {
	v, err := i.line.Value()
	if err != nil {
		return false, fmt.Errorf("read input: %w", err)
	}
	return v != 0, nil
}
