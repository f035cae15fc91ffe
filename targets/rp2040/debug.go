//go:build rp2040 && bootdebug

package main

import "picoboot/core"

func init() {
	core.SetDebugEnabled(true)
}
