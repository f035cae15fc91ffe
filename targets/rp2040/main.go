//go:build rp2040

package main

import (
	"picoboot/core"
)

func main() {
	// Any panic on the boot path ends in the fault entry point
	defer core.Recover()

	// Debug output goes to the runtime console; only enabled with -tags bootdebug
	core.SetDebugWriter(func(s string) {
		println(s)
	})

	core.Boot()
}
