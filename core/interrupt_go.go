//go:build !tinygo

package core

// irqState is a placeholder for interrupt state on regular Go
type irqState uintptr

// interruptsMasked records that disableInterrupts was called (for testing)
var interruptsMasked bool

// disableInterrupts marks interrupts as masked on regular Go
func disableInterrupts() irqState {
	interruptsMasked = true
	return 0
}
