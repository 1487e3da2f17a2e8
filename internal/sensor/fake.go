package sensor

import "errors"

// TempResult is one scripted measurement outcome.
type TempResult struct {
	TempC int
	Err   error
}

// FakeTempSensor is a test double that returns scripted measurement
// outcomes. Each Measure call consumes the next result; the last result
// repeats once the script is exhausted.
type FakeTempSensor struct {
	Results []TempResult

	// Measures counts Measure calls.
	Measures int

	index int
	last  int
}

// Measure consumes the next scripted result.
func (f *FakeTempSensor) Measure() error {
	f.Measures++
	if len(f.Results) == 0 {
		return errors.New("no results configured")
	}

	r := f.Results[f.index]
	if f.index < len(f.Results)-1 {
		f.index++
	}
	if r.Err != nil {
		return r.Err
	}
	f.last = r.TempC
	return nil
}

// Temperature returns the value of the last successful measurement.
func (f *FakeTempSensor) Temperature() int { return f.last }

// FakeLightSensor is a test double that returns scripted ADC values.
type FakeLightSensor struct {
	// Values are consumed one per Read call; the last repeats.
	Values []uint16

	// ReadError, if set, will be returned by Read().
	ReadError error

	index int
}

// Read returns the next scripted value.
func (f *FakeLightSensor) Read() (uint16, error) {
	if f.ReadError != nil {
		return 0, f.ReadError
	}
	if len(f.Values) == 0 {
		return 0, errors.New("no values configured")
	}

	v := f.Values[f.index]
	if f.index < len(f.Values)-1 {
		f.index++
	}
	return v, nil
}
