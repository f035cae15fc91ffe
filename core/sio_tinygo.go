//go:build tinygo && rp2040

package core

import (
	"runtime/volatile"
	"unsafe"
)

var sioRegisters = [numRegisters]*volatile.Register32{
	regOutSet: (*volatile.Register32)(unsafe.Pointer(regOutSet.address())),
	regOutClr: (*volatile.Register32)(unsafe.Pointer(regOutClr.address())),
	regOESet:  (*volatile.Register32)(unsafe.Pointer(regOESet.address())),
	regOEClr:  (*volatile.Register32)(unsafe.Pointer(regOEClr.address())),
}

// writeRegister performs a single volatile store to the SIO register
func writeRegister(r sioRegister, value uint32) {
	sioRegisters[r].Set(value)
}
