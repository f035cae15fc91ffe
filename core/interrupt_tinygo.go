//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts disables interrupts and returns the previous state.
// The fault path never restores it.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}
