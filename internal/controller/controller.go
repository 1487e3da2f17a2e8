// Package controller runs the top-level mode loop of the node. Each tick
// polls the mode button first, then runs one pass of whichever mode is
// active: an automatic sensing cycle, or one bounded step of the manual
// command session. Keeping the manual pass bounded is what makes the
// button responsive while an operator is connected.
package controller

import (
	"time"

	"github.com/halloran/envnode/internal/actuator"
	"github.com/halloran/envnode/internal/display"
	"github.com/halloran/envnode/internal/gpio"
	"github.com/halloran/envnode/internal/history"
	"github.com/halloran/envnode/internal/logic"
	"github.com/halloran/envnode/internal/report"
	"github.com/halloran/envnode/internal/sensor"
	"github.com/halloran/envnode/internal/session"
)

// Deps are the controller's collaborators, constructed by the caller.
type Deps struct {
	Button    gpio.InputPin
	Sensors   *sensor.Reader
	Actuators *actuator.Controller
	History   *history.Buffer
	Presenter *display.Presenter
	Session   *session.Session
	Reporter  report.Reporter
}

// Config carries the loop timing. Zero fields get the board defaults.
type Config struct {
	// AutoInterval is the pause after each automatic cycle.
	AutoInterval time.Duration
	// ManualPause is the pause after each manual session step.
	ManualPause time.Duration
	// Debounce is the minimum gap between accepted button presses.
	Debounce time.Duration

	// Now and Sleep are injectable so tests run without wall time.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// ModeController is the outer state machine.
type ModeController struct {
	deps Deps

	autoInterval time.Duration
	manualPause  time.Duration

	now   func() time.Time
	sleep func(time.Duration)

	debouncer *logic.Debouncer
	mode      logic.Mode
}

// New creates a controller starting in automatic mode.
func New(deps Deps, cfg Config) *ModeController {
	if cfg.AutoInterval == 0 {
		cfg.AutoInterval = time.Second
	}
	if cfg.ManualPause == 0 {
		cfg.ManualPause = 100 * time.Millisecond
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = 300 * time.Millisecond
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &ModeController{
		deps:         deps,
		autoInterval: cfg.AutoInterval,
		manualPause:  cfg.ManualPause,
		now:          cfg.Now,
		sleep:        cfg.Sleep,
		debouncer:    logic.NewDebouncer(cfg.Debounce),
		mode:         logic.ModeAuto,
	}
}

// Mode reports the current operating mode.
func (m *ModeController) Mode() logic.Mode {
	return m.mode
}

// Run ticks the loop until stop is closed.
func (m *ModeController) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		m.Tick()
	}
}

// Tick runs one pass of the loop: button first, then the active mode.
func (m *ModeController) Tick() {
	m.pollButton()

	switch m.mode {
	case logic.ModeManual:
		switch m.deps.Session.Step() {
		case session.ExitTimeout, session.ExitCommand:
			m.mode = logic.ModeAuto
		}
		m.sleep(m.manualPause)

	default:
		m.autoPass()
		m.sleep(m.autoInterval)
	}
}

// pollButton samples the mode button and switches modes on an accepted
// press. A read fault is reported and the sample skipped; the loop never
// stops for a flaky button line.
func (m *ModeController) pollButton() {
	high, err := m.deps.Button.Read()
	if err != nil {
		m.deps.Reporter.Line("button read error: %v", err)
		return
	}
	if !m.debouncer.Poll(high, m.now()) {
		return
	}

	if m.mode == logic.ModeAuto {
		m.deps.Reporter.Line("[BUTTON] Switching to Manual Mode")
		m.mode = logic.ModeManual
		// Entry actions: quiesce the actuators, then open the session.
		m.deps.Actuators.AllOff()
		m.deps.Session.Begin()
	} else {
		m.deps.Reporter.Line("[BUTTON] Switching to Auto Mode")
		m.mode = logic.ModeAuto
	}
}

// autoPass runs one automatic sensing cycle: read, record, actuate, render.
// The actuator policy is applied even on a degraded read so a previous ON
// state is always cleared when sensing fails.
func (m *ModeController) autoPass() {
	temp, light := m.deps.Sensors.Read()

	if temp != nil && light != nil {
		m.deps.Reporter.Line("[AUTO MODE] Temp: %d C, Light ADC: %d", *temp, *light)
		m.deps.History.Record(history.Reading{Time: m.now(), TempC: *temp, Light: *light})
	} else {
		m.deps.Reporter.Line("Sensor error: Invalid sensor data received.")
	}

	m.deps.Actuators.Apply(temp, light)

	if err := m.deps.Presenter.Render(m.mode, temp, light); err != nil {
		m.deps.Reporter.Line("display error: %v", err)
	}
}
