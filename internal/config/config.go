// Package config loads the node configuration from a YAML file. A missing
// file is not an error: the node boots on board defaults so a bare image
// still runs.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/halloran/envnode/internal/gpio"
	"github.com/halloran/envnode/internal/serialio"
)

// SerialConfig selects the command stream port.
type SerialConfig struct {
	// Port is the device path, e.g. /dev/ttyACM0. Empty means stdin.
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// PinConfig holds the GPIO line offsets.
type PinConfig struct {
	LED    int `yaml:"led"`
	Buzzer int `yaml:"buzzer"`
	Button int `yaml:"button"`
}

// ThresholdConfig holds the automatic policy trip points.
type ThresholdConfig struct {
	TemperatureC int    `yaml:"temperature_c"`
	LightADC     uint16 `yaml:"light_adc"`
}

// TimingConfig holds the loop timing.
type TimingConfig struct {
	AutoInterval   time.Duration `yaml:"auto_interval"`
	ManualPause    time.Duration `yaml:"manual_pause"`
	Debounce       time.Duration `yaml:"debounce"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
	PollInterval   time.Duration `yaml:"poll_interval"`
}

// Config is the full node configuration.
type Config struct {
	Serial     SerialConfig    `yaml:"serial"`
	Pins       PinConfig       `yaml:"pins"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Timing     TimingConfig    `yaml:"timing"`
}

// Default returns the board defaults.
func Default() Config {
	return Config{
		Serial: SerialConfig{
			Baud: serialio.DefaultBaudRate,
		},
		Pins: PinConfig{
			LED:    gpio.DefaultPinLED,
			Buzzer: gpio.DefaultPinBuzzer,
			Button: gpio.DefaultPinButton,
		},
		Thresholds: ThresholdConfig{
			TemperatureC: 30,
			LightADC:     10000,
		},
		Timing: TimingConfig{
			AutoInterval:   time.Second,
			ManualPause:    100 * time.Millisecond,
			Debounce:       300 * time.Millisecond,
			CommandTimeout: 10 * time.Second,
			PollInterval:   100 * time.Millisecond,
		},
	}
}

// Load reads path and overlays it on the defaults. A missing file yields
// the defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ensureDefaults()
	return cfg, nil
}

// ensureDefaults backfills zero values left by a partial file.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Baud == 0 {
		c.Serial.Baud = def.Serial.Baud
	}
	if c.Thresholds.TemperatureC == 0 {
		c.Thresholds.TemperatureC = def.Thresholds.TemperatureC
	}
	if c.Thresholds.LightADC == 0 {
		c.Thresholds.LightADC = def.Thresholds.LightADC
	}
	if c.Timing.AutoInterval == 0 {
		c.Timing.AutoInterval = def.Timing.AutoInterval
	}
	if c.Timing.ManualPause == 0 {
		c.Timing.ManualPause = def.Timing.ManualPause
	}
	if c.Timing.Debounce == 0 {
		c.Timing.Debounce = def.Timing.Debounce
	}
	if c.Timing.CommandTimeout == 0 {
		c.Timing.CommandTimeout = def.Timing.CommandTimeout
	}
	if c.Timing.PollInterval == 0 {
		c.Timing.PollInterval = def.Timing.PollInterval
	}
}
