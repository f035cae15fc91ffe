//go:build tinygo && rp2040

package core

import "device/arm"

// waitForInterrupt sleeps the core until the next interrupt
func waitForInterrupt() {
	arm.Asm("wfi")
}
