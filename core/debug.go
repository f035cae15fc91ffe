package core

// DebugWriter receives one line of boot trace
type DebugWriter func(string)

var (
	// debugPrintln is where boot trace lines go; the rp2040 target points
	// it at the runtime console
	debugPrintln DebugWriter = func(s string) {}

	// debugEnabled gates the trace. Off unless the target was built with
	// the bootdebug tag, so a missing console never affects the LED.
	debugEnabled bool = false
)

// SetDebugWriter sets the console that receives boot trace lines
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled turns the boot trace on or off
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// DebugPrintln writes one trace line if tracing is on
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}
