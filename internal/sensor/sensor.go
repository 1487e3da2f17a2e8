// Package sensor acquires temperature and light readings through the
// board's measurement capabilities, with bounded retry and best-effort
// degradation: a channel that cannot be read this cycle is reported as
// absent, never as a failure of the loop.
package sensor

// TempSensor is the temperature/humidity measurement capability.
type TempSensor interface {
	// Measure triggers one measurement. It fails on a transport or
	// checksum error.
	Measure() error

	// Temperature returns the last measured temperature in °C.
	Temperature() int
}

// LightSensor is the light-level ADC capability.
type LightSensor interface {
	// Read returns the raw 16-bit light level.
	Read() (uint16, error)
}
