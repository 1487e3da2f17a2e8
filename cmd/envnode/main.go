// Command envnode runs the environment node control loop: automatic
// threshold control of an LED and buzzer from temperature and light
// readings, with a button-selected manual mode driven over a serial
// console. On a Linux host the GPIO lines go through the character
// device; the sensors are simulated (they sit on the microcontroller,
// which runs its own build of this loop).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/halloran/envnode/internal/actuator"
	"github.com/halloran/envnode/internal/config"
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

func main() {
	configPath := flag.String("config", "/etc/envnode.yaml", "YAML configuration file (missing file uses defaults)")
	port := flag.String("port", "", "serial port for the command console (overrides config; empty with no config port uses stdin)")
	fake := flag.Bool("fake", false, "run on simulated pins instead of the GPIO character device")
	printState := flag.Bool("print-state", false, "print one sensor and button snapshot and exit")

	flag.Parse()

	if err := run(*configPath, *port, *fake, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(configPath, portOverride string, fake, printState bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if portOverride != "" {
		cfg.Serial.Port = portOverride
	}

	rep := report.NewConsole(os.Stdout)

	// Pins
	var (
		led, buzzer gpio.OutputPin
		button      gpio.InputPin
	)
	if fake {
		led = &gpio.FakeOutput{}
		buzzer = &gpio.FakeOutput{}
		button = gpio.NewFakeInput([]bool{true})
	} else {
		board, err := gpio.NewRealBoard(cfg.Pins.LED, cfg.Pins.Buzzer, cfg.Pins.Button)
		if err != nil {
			return fmt.Errorf("init gpio: %w", err)
		}
		defer board.Close()
		led, buzzer, button = board.LED(), board.Buzzer(), board.Button()
	}

	reader := sensor.NewReader(
		sensor.NewSimTempSensor(time.Now),
		sensor.NewSimLightSensor(time.Now),
		rep,
	)

	if printState {
		return printSnapshot(reader, button)
	}

	// Command console
	var stream serialio.CommandStream
	if cfg.Serial.Port != "" {
		s, err := serialio.OpenSerial(cfg.Serial.Port, cfg.Serial.Baud)
		if err != nil {
			return fmt.Errorf("init serial: %w", err)
		}
		stream = s
	} else {
		stream = serialio.NewStdin()
	}
	defer stream.Close()

	th := logic.Thresholds{
		TempC:    cfg.Thresholds.TemperatureC,
		LightADC: cfg.Thresholds.LightADC,
	}
	acts := actuator.New(led, buzzer, th, rep)
	hist := history.New(history.DefaultCapacity)
	pres := display.NewPresenter(display.NewConsole(os.Stdout), th.LightADC)

	sess := session.New(session.Config{
		Stream:       stream,
		Sensors:      reader,
		Actuators:    acts,
		History:      hist,
		Presenter:    pres,
		Reporter:     rep,
		Timeout:      cfg.Timing.CommandTimeout,
		PollInterval: cfg.Timing.PollInterval,
	})

	ctrl := controller.New(controller.Deps{
		Button:    button,
		Sensors:   reader,
		Actuators: acts,
		History:   hist,
		Presenter: pres,
		Session:   sess,
		Reporter:  rep,
	}, controller.Config{
		AutoInterval: cfg.Timing.AutoInterval,
		ManualPause:  cfg.Timing.ManualPause,
		Debounce:     cfg.Timing.Debounce,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	stop := make(chan struct{})
	go func() {
		s := <-sigCh
		log.Printf("received %v, shutting down", s)
		close(stop)
	}()

	log.Printf("started: pins led=%d buzzer=%d button=%d temp>%dC light<%d auto=%v timeout=%v",
		cfg.Pins.LED, cfg.Pins.Buzzer, cfg.Pins.Button,
		th.TempC, th.LightADC, cfg.Timing.AutoInterval, cfg.Timing.CommandTimeout)

	ctrl.Run(stop)

	// Leave the outputs quiet; on real hardware board.Close lowers the
	// lines again on the way out.
	acts.AllOff()
	return nil
}

func printSnapshot(reader *sensor.Reader, button gpio.InputPin) error {
	temp, light := reader.Read()
	if temp == nil || light == nil {
		return fmt.Errorf("sensor read failed")
	}
	high, err := button.Read()
	if err != nil {
		return fmt.Errorf("read button: %w", err)
	}
	pressed := "released"
	if !high {
		pressed = "pressed"
	}
	fmt.Printf("Temp: %d C, Light ADC: %d, Button: %s\n", *temp, *light, pressed)
	return nil
}
