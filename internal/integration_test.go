package internal

import (
	"errors"
	"testing"
	"time"

	"github.com/halloran/envnode/internal/actuator"
	"github.com/halloran/envnode/internal/controller"
	"github.com/halloran/envnode/internal/display"
	"github.com/halloran/envnode/internal/gpio"
	"github.com/halloran/envnode/internal/history"
	"github.com/halloran/envnode/internal/logic"
	"github.com/halloran/envnode/internal/report"
	"github.com/halloran/envnode/internal/sensor"
	"github.com/halloran/envnode/internal/serialio"
	"github.com/halloran/envnode/internal/session"
)

// rig wires the full stack on fakes, the way cmd/envnode wires it on
// hardware. The clock advances by one second per tick.
type rig struct {
	ctrl   *controller.ModeController
	button *gpio.FakeInput
	led    *gpio.FakeOutput
	buzzer *gpio.FakeOutput
	hist   *history.Buffer
	disp   *display.Fake
	rep    *report.Fake
	now    time.Time
}

func newRig(t *testing.T, temps []sensor.TempResult, lights []uint16, levels []bool, steps []serialio.Step) *rig {
	t.Helper()

	r := &rig{
		button: gpio.NewFakeInput(levels),
		led:    &gpio.FakeOutput{},
		buzzer: &gpio.FakeOutput{},
		hist:   history.New(history.DefaultCapacity),
		disp:   display.NewFake(),
		rep:    report.NewFake(),
		now:    time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	th := logic.Thresholds{TempC: 30, LightADC: 10000}
	reader := sensor.NewReader(
		&sensor.FakeTempSensor{Results: temps},
		&sensor.FakeLightSensor{Values: lights},
		r.rep,
	)
	reader.SetSleep(func(time.Duration) {})

	acts := actuator.New(r.led, r.buzzer, th, r.rep)
	pres := display.NewPresenter(r.disp, th.LightADC)

	now := func() time.Time { return r.now }

	sess := session.New(session.Config{
		Stream:    serialio.NewFake(steps),
		Sensors:   reader,
		Actuators: acts,
		History:   r.hist,
		Presenter: pres,
		Reporter:  r.rep,
		Now:       now,
	})

	r.ctrl = controller.New(controller.Deps{
		Button:    r.button,
		Sensors:   reader,
		Actuators: acts,
		History:   r.hist,
		Presenter: pres,
		Session:   sess,
		Reporter:  r.rep,
	}, controller.Config{
		Now:   now,
		Sleep: func(time.Duration) {},
	})

	return r
}

// tick runs one controller pass and advances the clock.
func (r *rig) tick(d time.Duration) {
	r.ctrl.Tick()
	r.now = r.now.Add(d)
}

// TestIntegrationAutoCycles runs several automatic passes and checks that
// readings accumulate, actuators track the thresholds, and the display
// shows the latest frame.
func TestIntegrationAutoCycles(t *testing.T) {
	r := newRig(t,
		[]sensor.TempResult{{TempC: 25}, {TempC: 31}, {TempC: 29}},
		[]uint16{20000, 5000, 20000},
		[]bool{true},
		nil,
	)

	// Pass 1: cool and bright, everything off.
	r.tick(time.Second)
	if r.led.Get() || r.buzzer.Get() {
		t.Error("pass 1: actuators should be off")
	}

	// Pass 2: hot and dark, both on.
	r.tick(time.Second)
	if !r.led.Get() || !r.buzzer.Get() {
		t.Error("pass 2: actuators should be on")
	}
	if !r.rep.Contains("[AUTO MODE] Temp: 31 C, Light ADC: 5000") {
		t.Errorf("pass 2: missing auto report: %v", r.rep.Lines)
	}

	// Pass 3: back to normal, both off again.
	r.tick(time.Second)
	if r.led.Get() || r.buzzer.Get() {
		t.Error("pass 3: actuators should be off")
	}

	if r.hist.Len() != 3 {
		t.Errorf("history length = %d, want 3", r.hist.Len())
	}
	frame := r.disp.LastFrame()
	if len(frame) != 3 || frame[0].S != "Mode: auto" {
		t.Errorf("unexpected last frame: %v", frame)
	}
}

// TestIntegrationButtonThenManualCommands drives a button press into
// manual mode and runs operator commands over the fake stream.
func TestIntegrationButtonThenManualCommands(t *testing.T) {
	r := newRig(t,
		[]sensor.TempResult{{TempC: 31}},
		[]uint16{5000},
		[]bool{true, false, true},
		[]serialio.Step{
			{Ready: false},
			{Ready: true, Data: []byte("b\n")},
			{Ready: true, Data: []byte("r\n")},
			{Ready: true, Data: []byte("m\n")},
		},
	)

	// Auto pass turns actuators on, then the press enters manual. The
	// entry tick still runs one idle session step.
	r.tick(time.Second)
	r.tick(time.Second)
	if r.ctrl.Mode() != logic.ModeManual {
		t.Fatalf("mode = %v, want manual", r.ctrl.Mode())
	}
	if r.led.Get() || r.buzzer.Get() {
		t.Error("manual entry must turn actuators off")
	}

	// "b": buzzer on under operator control.
	r.tick(100 * time.Millisecond)
	if !r.buzzer.Get() {
		t.Error("buzzer should be on after toggle")
	}

	// "r": one more reading recorded (the auto pass plus this one).
	r.tick(100 * time.Millisecond)
	if r.hist.Len() != 2 {
		t.Errorf("history length = %d, want 2", r.hist.Len())
	}

	// "m": back to auto; the next pass reasserts the policy.
	r.tick(100 * time.Millisecond)
	if r.ctrl.Mode() != logic.ModeAuto {
		t.Fatalf("mode = %v, want auto", r.ctrl.Mode())
	}
	r.tick(time.Second)
	if !r.led.Get() || !r.buzzer.Get() {
		t.Error("auto policy should reassert both actuators")
	}
}

// TestIntegrationManualTimeout leaves a manual session idle until the
// inactivity window expires.
func TestIntegrationManualTimeout(t *testing.T) {
	r := newRig(t,
		[]sensor.TempResult{{TempC: 25}},
		[]uint16{20000},
		[]bool{false, true},
		nil,
	)

	r.tick(time.Second)
	if r.ctrl.Mode() != logic.ModeManual {
		t.Fatal("press should enter manual")
	}

	// Idle past the 10 s window.
	for i := 0; i < 11; i++ {
		r.tick(time.Second)
	}

	if r.ctrl.Mode() != logic.ModeAuto {
		t.Fatalf("mode = %v, want auto after timeout", r.ctrl.Mode())
	}
	if !r.rep.Contains("Timeout: Switching back to Auto Mode") {
		t.Errorf("missing timeout report: %v", r.rep.Lines)
	}
}

// TestIntegrationDegradedSensorsFailSafe runs with a dead temperature
// channel and checks the node keeps cycling with everything off.
func TestIntegrationDegradedSensorsFailSafe(t *testing.T) {
	r := newRig(t,
		[]sensor.TempResult{{TempC: 31}, {Err: errTransport}, {Err: errTransport}},
		[]uint16{5000},
		[]bool{true},
		nil,
	)

	r.tick(time.Second)
	if !r.buzzer.Get() {
		t.Fatal("first pass should trip the buzzer")
	}

	r.tick(time.Second)
	if r.buzzer.Get() || r.led.Get() {
		t.Error("degraded pass must clear the actuators")
	}
	if r.hist.Len() != 1 {
		t.Errorf("history length = %d, want 1", r.hist.Len())
	}
	frame := r.disp.LastFrame()
	if len(frame) != 3 || frame[1].S != "Temp: -- C" {
		t.Errorf("degraded frame should show placeholder, got %v", frame)
	}
}

var errTransport = errors.New("transport error")
