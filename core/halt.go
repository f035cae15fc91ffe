package core

// Halt parks the core forever. It never returns; every path through the
// controller ends here.
func Halt() {
	for {
		waitForInterrupt()
	}
}
