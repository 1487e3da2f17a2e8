//go:build tinygo

//go:generate tinygo flash -target=pico

// Firmware build of the environment node for the Raspberry Pi Pico:
// DHT22 and LDR sensing, LED and buzzer outputs, SSD1306 status panel and
// a command console over USB serial. The control loop itself is the same
// code the host binary runs.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/dht"
	"tinygo.org/x/drivers/ssd1306"

	"github.com/halloran/envnode/internal/actuator"
	"github.com/halloran/envnode/internal/controller"
	"github.com/halloran/envnode/internal/display"
	"github.com/halloran/envnode/internal/history"
	"github.com/halloran/envnode/internal/logic"
	"github.com/halloran/envnode/internal/sensor"
	"github.com/halloran/envnode/internal/session"
)

func main() {
	// Give the USB serial port time to enumerate so early lines are not lost.
	time.Sleep(2 * time.Second)

	pinLED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinBuzzer.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinButton.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	machine.InitADC()
	adc := machine.ADC{Pin: pinLightADC}
	adc.Configure(machine.ADCConfig{})

	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       pinSDA,
		SCL:       pinSCL,
		Frequency: i2cFrequency,
	})
	panel := &oled{dev: ssd1306.NewI2C(machine.I2C0)}
	panel.dev.Configure(ssd1306.Config{
		Width:   oledWidth,
		Height:  oledHeight,
		Address: oledAddress,
	})
	panel.dev.ClearDisplay()

	rep := usbReporter{}
	th := logic.Thresholds{TempC: tempThresholdC, LightADC: lightThreshold}

	reader := sensor.NewReader(
		&dhtSensor{dev: dht.New(pinDHT, dht.DHT22)},
		&ldrSensor{adc: adc},
		rep,
	)

	led := &outPin{pin: pinLED}
	buzzer := &outPin{pin: pinBuzzer}
	acts := actuator.New(led, buzzer, th, rep)
	hist := history.New(history.DefaultCapacity)
	pres := display.NewPresenter(panel, th.LightADC)

	sess := session.New(session.Config{
		Stream:    usbConsole{},
		Sensors:   reader,
		Actuators: acts,
		History:   hist,
		Presenter: pres,
		Reporter:  rep,
	})

	ctrl := controller.New(controller.Deps{
		Button:    &inPin{pin: pinButton},
		Sensors:   reader,
		Actuators: acts,
		History:   hist,
		Presenter: pres,
		Session:   sess,
		Reporter:  rep,
	}, controller.Config{})

	rep.Line("envnode firmware started")
	ctrl.Run(nil)
}
