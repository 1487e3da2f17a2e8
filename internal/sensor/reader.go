package sensor

import (
	"time"

	"github.com/halloran/envnode/internal/report"
)

const (
	// tempAttempts bounds the retry loop for the temperature sensor.
	tempAttempts = 2

	// retryWait is how long to wait after a failed measurement before
	// retrying.
	retryWait = 500 * time.Millisecond
)

// Reader performs one best-effort acquisition cycle over both channels.
type Reader struct {
	temp  TempSensor
	light LightSensor
	rep   report.Reporter

	// sleep is injectable so tests run without wall time.
	sleep func(time.Duration)
}

// NewReader creates a reader over the given capabilities.
func NewReader(temp TempSensor, light LightSensor, rep report.Reporter) *Reader {
	return &Reader{
		temp:  temp,
		light: light,
		rep:   rep,
		sleep: time.Sleep,
	}
}

// SetSleep replaces the retry wait, for tests.
func (r *Reader) SetSleep(sleep func(time.Duration)) {
	r.sleep = sleep
}

// Read acquires both channels. A nil result means that channel was
// unavailable this cycle; errors are reported to the operator and
// swallowed here. Callers treat absence as degraded sensing, not as a
// fatal condition.
func (r *Reader) Read() (*int, *uint16) {
	var temp *int
	for attempt := 0; attempt < tempAttempts; attempt++ {
		err := r.temp.Measure()
		if err == nil {
			v := r.temp.Temperature()
			temp = &v
			break
		}
		r.rep.Line("Error reading temperature sensor: %v", err)
		if attempt < tempAttempts-1 {
			r.sleep(retryWait)
		}
	}

	// The light channel is single-shot. The raw value spans the full
	// 16-bit range by construction, so a transport error is the only
	// failure mode.
	var light *uint16
	v, err := r.light.Read()
	if err != nil {
		r.rep.Line("Error reading light sensor: %v", err)
	} else {
		light = &v
	}

	return temp, light
}
