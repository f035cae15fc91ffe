//go:build !(tinygo && rp2040)

package core

// waitHook stands in for the wfi instruction on regular Go.
// The default blocks the calling goroutine forever.
var waitHook = func() {
	select {}
}

// SetWaitHook replaces the wait-for-interrupt stand-in (regular Go only).
// Tests use it to bound an otherwise endless halt loop, for example by
// calling runtime.Goexit.
func SetWaitHook(hook func()) {
	if hook == nil {
		hook = func() { select {} }
	}
	waitHook = hook
}

func waitForInterrupt() {
	waitHook()
}
