//go:build tinygo

package main

import (
	"fmt"
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/dht"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
)

// outPin drives one GPIO output and remembers the commanded state.
type outPin struct {
	pin   machine.Pin
	state bool
}

func (p *outPin) Set(on bool) error {
	p.pin.Set(on)
	p.state = on
	return nil
}

func (p *outPin) Get() bool { return p.state }

// inPin reads one GPIO input.
type inPin struct {
	pin machine.Pin
}

func (p *inPin) Read() (bool, error) {
	return p.pin.Get(), nil
}

// dhtSensor adapts the DHT22 driver.
type dhtSensor struct {
	dev  dht.DummyDevice
	last int
}

func (s *dhtSensor) Measure() error {
	if err := s.dev.ReadMeasurements(); err != nil {
		return err
	}
	t, err := s.dev.Temperature()
	if err != nil {
		return err
	}
	// The driver reports tenths of a degree.
	s.last = int(t) / 10
	return nil
}

func (s *dhtSensor) Temperature() int { return s.last }

// ldrSensor reads the light-dependent resistor divider on an ADC pin.
type ldrSensor struct {
	adc machine.ADC
}

func (s *ldrSensor) Read() (uint16, error) {
	return s.adc.Get(), nil
}

// oled adapts the SSD1306 driver plus tinyfont text drawing.
type oled struct {
	dev ssd1306.Device
}

var oledWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// fontBaseline shifts row origins from top-left to the font baseline.
const fontBaseline = 7

func (o *oled) Clear() {
	o.dev.ClearBuffer()
}

func (o *oled) DrawText(text string, x, y int) {
	tinyfont.WriteLine(&o.dev, &tinyfont.Org01, int16(x), int16(y+fontBaseline), text, oledWhite)
}

func (o *oled) Flush() error {
	return o.dev.Display()
}

// usbConsole is the command stream over the USB CDC serial port.
type usbConsole struct{}

func (usbConsole) Poll(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if machine.Serial.Buffered() > 0 {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

func (usbConsole) Read(max int) ([]byte, error) {
	// Let the CR/LF that trails a command character arrive.
	time.Sleep(5 * time.Millisecond)

	out := make([]byte, 0, max)
	for len(out) < max && machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			break
		}
		out = append(out, b)
	}
	return out, nil
}

func (usbConsole) Close() error { return nil }

// usbReporter prints operator lines over the same USB serial port.
type usbReporter struct{}

func (usbReporter) Line(format string, args ...any) {
	println(fmt.Sprintf(format, args...))
}
