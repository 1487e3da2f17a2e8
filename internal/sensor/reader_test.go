package sensor

import (
	"errors"
	"testing"
	"time"

	"github.com/halloran/envnode/internal/report"
)

func TestReadBothChannels(t *testing.T) {
	temp := &FakeTempSensor{Results: []TempResult{{TempC: 26}}}
	light := &FakeLightSensor{Values: []uint16{12000}}
	r := NewReader(temp, light, report.NewFake())

	gotTemp, gotLight := r.Read()
	if gotTemp == nil || *gotTemp != 26 {
		t.Errorf("temp = %v, want 26", gotTemp)
	}
	if gotLight == nil || *gotLight != 12000 {
		t.Errorf("light = %v, want 12000", gotLight)
	}
	if temp.Measures != 1 {
		t.Errorf("Measures = %d, want 1 (no retry on success)", temp.Measures)
	}
}

func TestTemperatureRetrySucceedsOnSecondAttempt(t *testing.T) {
	temp := &FakeTempSensor{Results: []TempResult{
		{Err: errors.New("checksum error")},
		{TempC: 24},
	}}
	light := &FakeLightSensor{Values: []uint16{100}}
	rep := report.NewFake()
	r := NewReader(temp, light, rep)

	var slept []time.Duration
	r.SetSleep(func(d time.Duration) { slept = append(slept, d) })

	gotTemp, _ := r.Read()
	if gotTemp == nil || *gotTemp != 24 {
		t.Fatalf("temp = %v, want 24", gotTemp)
	}
	if temp.Measures != 2 {
		t.Errorf("Measures = %d, want 2", temp.Measures)
	}
	if len(slept) != 1 || slept[0] != 500*time.Millisecond {
		t.Errorf("slept = %v, want one 500ms wait", slept)
	}
	if !rep.Contains("Error reading temperature sensor") {
		t.Error("first failure should be reported")
	}
}

func TestTemperatureUnavailableAfterExhaustedRetries(t *testing.T) {
	temp := &FakeTempSensor{Results: []TempResult{
		{Err: errors.New("transport error")},
	}}
	light := &FakeLightSensor{Values: []uint16{40000}}
	rep := report.NewFake()
	r := NewReader(temp, light, rep)

	var slept int
	r.SetSleep(func(time.Duration) { slept++ })

	gotTemp, gotLight := r.Read()
	if gotTemp != nil {
		t.Errorf("temp = %v, want nil after exhausted retries", *gotTemp)
	}
	if gotLight == nil || *gotLight != 40000 {
		t.Errorf("light = %v, want 40000 (independent of temp failure)", gotLight)
	}
	if temp.Measures != 2 {
		t.Errorf("Measures = %d, want 2", temp.Measures)
	}
	// No wait after the final attempt: there is nothing left to retry.
	if slept != 1 {
		t.Errorf("slept %d times, want 1", slept)
	}
	if len(rep.Lines) != 2 {
		t.Errorf("reported %d lines, want 2 failure reports", len(rep.Lines))
	}
}

func TestLightUnavailableOnTransportError(t *testing.T) {
	temp := &FakeTempSensor{Results: []TempResult{{TempC: 22}}}
	light := &FakeLightSensor{ReadError: errors.New("adc fault")}
	rep := report.NewFake()
	r := NewReader(temp, light, rep)

	gotTemp, gotLight := r.Read()
	if gotTemp == nil || *gotTemp != 22 {
		t.Errorf("temp = %v, want 22 (independent of light failure)", gotTemp)
	}
	if gotLight != nil {
		t.Errorf("light = %v, want nil", *gotLight)
	}
	if !rep.Contains("Error reading light sensor") {
		t.Error("light failure should be reported")
	}
}

func TestReadNeverPanicsWithBothChannelsDown(t *testing.T) {
	temp := &FakeTempSensor{Results: []TempResult{{Err: errors.New("dead")}}}
	light := &FakeLightSensor{ReadError: errors.New("dead")}
	r := NewReader(temp, light, report.NewFake())
	r.SetSleep(func(time.Duration) {})

	gotTemp, gotLight := r.Read()
	if gotTemp != nil || gotLight != nil {
		t.Error("expected both channels unavailable")
	}
}
