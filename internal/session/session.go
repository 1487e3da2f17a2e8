// Package session implements the manual-mode command loop: a polled serial
// console with an inactivity timeout that reverts the node to automatic
// mode. The outer controller runs one Step per tick so the mode button
// stays responsive between passes.
package session

import (
	"time"

	"github.com/halloran/envnode/internal/actuator"
	"github.com/halloran/envnode/internal/display"
	"github.com/halloran/envnode/internal/history"
	"github.com/halloran/envnode/internal/logic"
	"github.com/halloran/envnode/internal/report"
	"github.com/halloran/envnode/internal/sensor"
	"github.com/halloran/envnode/internal/serialio"
)

// Status reports how a manual-mode pass ended.
type Status int

const (
	// Continue means the session is still running.
	Continue Status = iota
	// ExitTimeout means the inactivity timeout expired.
	ExitTimeout
	// ExitCommand means the operator requested automatic mode.
	ExitCommand
)

// Session is the manual-mode state. It is re-entered (Begin) on every
// Manual transition and stepped once per outer tick.
type Session struct {
	stream    serialio.CommandStream
	sensors   *sensor.Reader
	actuators *actuator.Controller
	hist      *history.Buffer
	presenter *display.Presenter
	rep       report.Reporter

	timeout      time.Duration
	pollInterval time.Duration

	// now is injectable so tests run without wall time.
	now          func() time.Time
	lastActivity time.Time
}

// Config carries the session collaborators and timing.
type Config struct {
	Stream    serialio.CommandStream
	Sensors   *sensor.Reader
	Actuators *actuator.Controller
	History   *history.Buffer
	Presenter *display.Presenter
	Reporter  report.Reporter

	// Timeout is the inactivity window before reverting to Auto.
	Timeout time.Duration
	// PollInterval is the input poll granularity.
	PollInterval time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// New creates a session. Zero timing fields get the board defaults
// (10 s timeout, 100 ms poll).
func New(cfg Config) *Session {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 100 * time.Millisecond
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Session{
		stream:       cfg.Stream,
		sensors:      cfg.Sensors,
		actuators:    cfg.Actuators,
		hist:         cfg.History,
		presenter:    cfg.Presenter,
		rep:          cfg.Reporter,
		timeout:      cfg.Timeout,
		pollInterval: cfg.PollInterval,
		now:          cfg.Now,
	}
}

// Begin runs the entry actions for a fresh Manual session: one sensor
// read, a display render, the command menu, and an inactivity timer reset.
func (s *Session) Begin() {
	temp, light := s.sensors.Read()
	s.render(temp, light)

	s.rep.Line("[MANUAL MODE] Commands:")
	s.rep.Line("  b - Toggle buzzer")
	s.rep.Line("  l - Toggle LED")
	s.rep.Line("  r - Read sensors now")
	s.rep.Line("  s - Show last %d sensor readings", history.DefaultCapacity)
	s.rep.Line("  m - Switch to Auto Mode")

	s.lastActivity = s.now()
}

// Step runs one pass of the manual loop: the inactivity check first, then
// one timed poll, then at most one command dispatch. The timeout is always
// evaluated before new input is looked for.
func (s *Session) Step() Status {
	if s.now().Sub(s.lastActivity) > s.timeout {
		s.rep.Line("Timeout: Switching back to Auto Mode")
		return ExitTimeout
	}

	if !s.stream.Poll(s.pollInterval) {
		return Continue
	}

	raw, err := s.stream.Read(maxCommandBytes)
	if err != nil {
		// A broken console is not fatal: surface it and keep looping.
		// The timer is deliberately not reset: an unusable stream must
		// still time out back to Auto.
		s.rep.Line("Input error: %v", err)
		if rerr := s.presenter.RenderNotice("Serial Unavailable"); rerr != nil {
			s.rep.Line("display error: %v", rerr)
		}
		return Continue
	}

	s.lastActivity = s.now()
	return s.dispatch(Parse(raw))
}

func (s *Session) dispatch(cmd Command) Status {
	switch cmd {
	case CmdToggleBuzzer:
		s.rep.Line("Buzzer toggled; new state: %s", onOff(s.actuators.ToggleBuzzer()))

	case CmdToggleLED:
		s.rep.Line("LED toggled; new state: %s", onOff(s.actuators.ToggleLED()))

	case CmdReadSensors:
		temp, light := s.sensors.Read()
		if temp != nil && light != nil {
			s.rep.Line("Sensor read: Temp: %d C, Light ADC: %d", *temp, *light)
			s.hist.Record(history.Reading{Time: s.now(), TempC: *temp, Light: *light})
			s.render(temp, light)
		} else {
			s.rep.Line("Error reading sensors.")
		}

	case CmdShowHistory:
		snap := s.hist.Snapshot()
		s.rep.Line("Last %d sensor readings:", history.DefaultCapacity)
		for _, r := range snap {
			s.rep.Line("Time: %s | Temp: %d C | Light ADC: %d",
				r.Time.Format(time.RFC3339), r.TempC, r.Light)
		}

	case CmdModeAuto:
		s.rep.Line("Switching to Auto Mode")
		return ExitCommand

	default:
		s.rep.Line("Unknown command.")
	}

	return Continue
}

func (s *Session) render(temp *int, light *uint16) {
	if err := s.presenter.Render(logic.ModeManual, temp, light); err != nil {
		s.rep.Line("display error: %v", err)
	}
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
