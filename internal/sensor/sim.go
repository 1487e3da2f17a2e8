package sensor

import (
	"math"
	"time"
)

// The analog sensors hang off the microcontroller, so a host build has
// nothing to sample. Sim* stand in with a slow deterministic waveform that
// sweeps both channels across their thresholds, which is enough to watch
// the automatic policy react on a bench.

const simPeriod = 2 * time.Minute

// SimTempSensor generates temperatures between roughly 24 and 36 C.
type SimTempSensor struct {
	now  func() time.Time
	last int
}

// NewSimTempSensor creates a simulated temperature sensor.
func NewSimTempSensor(now func() time.Time) *SimTempSensor {
	if now == nil {
		now = time.Now
	}
	return &SimTempSensor{now: now}
}

// Measure samples the waveform. It never fails.
func (s *SimTempSensor) Measure() error {
	s.last = 30 + int(6*simWave(s.now()))
	return nil
}

// Temperature returns the last sampled value.
func (s *SimTempSensor) Temperature() int { return s.last }

// SimLightSensor generates ADC values sweeping the 16-bit range.
type SimLightSensor struct {
	now func() time.Time
}

// NewSimLightSensor creates a simulated light sensor.
func NewSimLightSensor(now func() time.Time) *SimLightSensor {
	if now == nil {
		now = time.Now
	}
	return &SimLightSensor{now: now}
}

// Read samples the waveform. It never fails.
func (s *SimLightSensor) Read() (uint16, error) {
	// Offset by a quarter period so light and temperature peaks do not
	// coincide and all four actuator combinations show up.
	v := simWave(s.now().Add(simPeriod / 4))
	return uint16((v + 1) / 2 * math.MaxUint16), nil
}

// simWave maps a wall-clock instant onto a sine in [-1, 1].
func simWave(t time.Time) float64 {
	phase := float64(t.UnixNano()%int64(simPeriod)) / float64(simPeriod)
	return math.Sin(2 * math.Pi * phase)
}
