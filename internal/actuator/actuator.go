// Package actuator applies the on/off policy to the LED and buzzer pins.
// In automatic mode it enforces the threshold policy each cycle; in manual
// mode it exposes direct toggles. Pin write failures are reported to the
// operator and swallowed: an actuator fault never stops the loop.
package actuator

import (
	"github.com/halloran/envnode/internal/gpio"
	"github.com/halloran/envnode/internal/logic"
	"github.com/halloran/envnode/internal/report"
)

// Controller owns the two output pins.
type Controller struct {
	led    gpio.OutputPin
	buzzer gpio.OutputPin
	th     logic.Thresholds
	rep    report.Reporter
}

// New creates a controller over the given pins.
func New(led, buzzer gpio.OutputPin, th logic.Thresholds, rep report.Reporter) *Controller {
	return &Controller{
		led:    led,
		buzzer: buzzer,
		th:     th,
		rep:    rep,
	}
}

// Apply enforces the automatic policy for one sensing cycle. When either
// channel is nil the policy is fail-safe all-off.
func (c *Controller) Apply(temp *int, light *uint16) {
	out := logic.Decide(temp, light, c.th)

	c.set(c.buzzer, "buzzer", out.Buzzer)
	if out.Buzzer {
		c.rep.Line("-> Buzzer ON (Temp above %d C)", c.th.TempC)
	}

	c.set(c.led, "LED", out.LED)
	if out.LED {
		c.rep.Line("-> LED ON (Dark)")
	}
}

// AllOff forces both outputs off. Called synchronously on every Manual
// mode entry.
func (c *Controller) AllOff() {
	c.set(c.led, "LED", false)
	c.set(c.buzzer, "buzzer", false)
}

// ToggleLED flips the LED and returns the new state.
func (c *Controller) ToggleLED() bool {
	c.set(c.led, "LED", !c.led.Get())
	return c.led.Get()
}

// ToggleBuzzer flips the buzzer and returns the new state.
func (c *Controller) ToggleBuzzer() bool {
	c.set(c.buzzer, "buzzer", !c.buzzer.Get())
	return c.buzzer.Get()
}

func (c *Controller) set(pin gpio.OutputPin, name string, on bool) {
	if err := pin.Set(on); err != nil {
		c.rep.Line("%s write error: %v", name, err)
	}
}
