// Package logic contains the pure control policy for the environment node:
// the mode enumeration, the button debouncer and the automatic actuator
// policy. This package has NO external dependencies (no GPIO, serial, OS,
// or time.Sleep). Time is always injectable via time.Time parameters.
package logic

// Mode is the top-level operating mode of the node.
type Mode string

const (
	// ModeAuto is sensor-driven actuator control with no operator input.
	ModeAuto Mode = "auto"
	// ModeManual suspends the automatic policy; the operator drives the
	// actuators over the command stream.
	ModeManual Mode = "manual"
)

// Thresholds are the fixed trip points for the automatic policy.
// They are loaded once at startup and never mutated.
type Thresholds struct {
	// TempC trips the buzzer when a reading is strictly above it.
	TempC int
	// LightADC marks the dark condition when a reading is strictly below it.
	LightADC uint16
}

// Outputs is the actuator state the automatic policy wants applied.
type Outputs struct {
	LED    bool
	Buzzer bool
}

// LightCondition classifies a raw light reading against the threshold.
type LightCondition string

const (
	LightDark   LightCondition = "Dark"
	LightBright LightCondition = "Bright"
)

// ClassifyLight maps a raw ADC value to a light condition. A value exactly
// at the threshold is Bright (the dark comparison is strict).
func ClassifyLight(light uint16, threshold uint16) LightCondition {
	if light < threshold {
		return LightDark
	}
	return LightBright
}

// Decide applies the automatic actuator policy to one sensing cycle.
// If either channel is unavailable the result is all-off: actuators must
// never be left on while sensing is degraded.
func Decide(temp *int, light *uint16, th Thresholds) Outputs {
	if temp == nil || light == nil {
		return Outputs{}
	}
	return Outputs{
		Buzzer: *temp > th.TempC,
		LED:    *light < th.LightADC,
	}
}
