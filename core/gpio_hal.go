package core

import "periph.io/x/conn/v3/gpio"

// Pin identifies a GPIO line by its bit index within the 32-bit SIO port
type Pin uint8

// StatusLED is the on-board LED of the Pico
const StatusLED Pin = 25

// Mask returns the single-bit mask selecting the pin in an SIO register.
// A pin past the end of the port yields 0, which no register acts on.
func (p Pin) Mask() uint32 {
	return uint32(1) << p
}

// Direction selects whether a pin drives the line or floats as an input
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "Output"
	}
	return "Input"
}

// Level is the logic level driven on an output pin
type Level = gpio.Level

const (
	Low  = gpio.Low
	High = gpio.High
)

// sioRegister names one of the write-only set/clear registers of the SIO
// GPIO block. Each register only asserts or deasserts the bits written as 1.
type sioRegister uint8

const (
	regOutSet sioRegister = iota // drive pin high
	regOutClr                    // drive pin low
	regOESet                     // enable output driver
	regOEClr                     // disable output driver
	numRegisters
)

// SIO block memory map (RP2040 datasheet 2.3.1.7)
const sioBase = 0xd0000000

var registerOffsets = [numRegisters]uintptr{
	regOutSet: 0x014,
	regOutClr: 0x018,
	regOESet:  0x024,
	regOEClr:  0x028,
}

// address returns the absolute bus address of the register
func (r sioRegister) address() uintptr {
	return sioBase + registerOffsets[r]
}

// SetDirection makes pin an output or an input.
// Output writes the pin's mask to OE_SET, Input writes it to OE_CLR.
func SetDirection(pin Pin, dir Direction) {
	if dir == Output {
		writeRegister(regOESet, pin.Mask())
	} else {
		writeRegister(regOEClr, pin.Mask())
	}
}

// SetValue drives pin to level.
// High writes the pin's mask to OUT_SET, Low writes it to OUT_CLR.
func SetValue(pin Pin, level Level) {
	if level == High {
		writeRegister(regOutSet, pin.Mask())
	} else {
		writeRegister(regOutClr, pin.Mask())
	}
}
