//go:build !(tinygo && rp2040)

package core

// RegisterBus receives the 32-bit stores that would reach the SIO block on
// hardware. Host builds use it to model the register file in tests.
type RegisterBus interface {
	Write32(addr uintptr, value uint32)
}

var registerBus RegisterBus

// SetRegisterBus installs the bus that receives register writes (regular Go only).
// A nil bus discards writes.
func SetRegisterBus(bus RegisterBus) {
	registerBus = bus
}

// writeRegister forwards the store to the installed bus
func writeRegister(r sioRegister, value uint32) {
	if registerBus != nil {
		registerBus.Write32(r.address(), value)
	}
}
