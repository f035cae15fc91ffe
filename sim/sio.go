//go:build !(tinygo && rp2040)

// Package sim models the RP2040 SIO GPIO register block on the host.
// It receives the stores core makes through its register bus and applies
// the hardware's set/clear semantics to an output-enable and an output
// state word, so tests can check which bits a call changed.
package sim

import "periph.io/x/conn/v3/gpio"

// SIO GPIO registers (RP2040 datasheet 2.3.1.7)
const (
	SIOBase    = 0xd0000000
	GPIOOut    = SIOBase + 0x010 // read view of the output state
	GPIOOutSet = SIOBase + 0x014
	GPIOOutClr = SIOBase + 0x018
	GPIOOE     = SIOBase + 0x020 // read view of the output enable state
	GPIOOESet  = SIOBase + 0x024
	GPIOOEClr  = SIOBase + 0x028
)

// Write is one 32-bit store seen on the bus
type Write struct {
	Addr  uintptr
	Value uint32
}

// SIO is a model of the SIO GPIO block.
// The zero value is a port with every pin an input driven low.
type SIO struct {
	out uint32
	oe  uint32

	// cells holds the last value stored at each write-only register
	cells map[uintptr]uint32

	writes []Write
	stray  []Write
}

// New returns a model with all state zeroed
func New() *SIO {
	return &SIO{cells: make(map[uintptr]uint32)}
}

// Write32 applies a store to the model
func (s *SIO) Write32(addr uintptr, value uint32) {
	w := Write{Addr: addr, Value: value}

	switch addr {
	case GPIOOutSet:
		s.out |= value
	case GPIOOutClr:
		s.out &^= value
	case GPIOOESet:
		s.oe |= value
	case GPIOOEClr:
		s.oe &^= value
	default:
		s.stray = append(s.stray, w)
		return
	}

	if s.cells == nil {
		s.cells = make(map[uintptr]uint32)
	}
	s.cells[addr] = value
	s.writes = append(s.writes, w)
}

// Register returns the last value stored at a set/clear register,
// or the current state word for GPIOOut and GPIOOE
func (s *SIO) Register(addr uintptr) uint32 {
	switch addr {
	case GPIOOut:
		return s.out
	case GPIOOE:
		return s.oe
	}
	return s.cells[addr]
}

// Output returns the output state word
func (s *SIO) Output() uint32 {
	return s.out
}

// OutputEnable returns the output enable word
func (s *SIO) OutputEnable() uint32 {
	return s.oe
}

// Level returns the level the model drives on pin
func (s *SIO) Level(pin uint8) gpio.Level {
	return gpio.Level(s.out&(uint32(1)<<pin) != 0)
}

// IsOutput reports whether the output driver of pin is enabled
func (s *SIO) IsOutput(pin uint8) bool {
	return s.oe&(uint32(1)<<pin) != 0
}

// Writes returns the stores to modelled registers in order
func (s *SIO) Writes() []Write {
	return s.writes
}

// Stray returns stores to addresses the model does not know
func (s *SIO) Stray() []Write {
	return s.stray
}

// Reset zeroes the model and forgets recorded writes
func (s *SIO) Reset() {
	s.out = 0
	s.oe = 0
	s.cells = make(map[uintptr]uint32)
	s.writes = nil
	s.stray = nil
}
