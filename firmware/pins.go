//go:build tinygo

package main

import "machine"

const (
	// Outputs
	pinLED    = machine.GP25
	pinBuzzer = machine.GP16

	// Mode button, pulled up, pressed = low.
	pinButton = machine.GP14

	// Sensors
	pinDHT      = machine.GP15
	pinLightADC = machine.GP26

	// OLED on I2C0
	pinSDA = machine.GP8
	pinSCL = machine.GP9

	oledAddress = 0x3C
	oledWidth   = 128
	oledHeight  = 64

	i2cFrequency = 400 * machine.KHz
)

// Fixed trip points for the automatic policy.
const (
	tempThresholdC = 30
	lightThreshold = 10000
)
