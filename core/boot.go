// Package core brings up the RP2040 status LED through the SIO GPIO
// registers. Boot is the normal entry point and Fault the panic entry
// point; both light the LED and end in Halt.
package core

// State is the controller's position in the boot sequence
type State uint8

const (
	Booting State = iota // reset, nothing written yet
	Running              // indicator driven, core parked
	Faulted              // panic path taken, core parked
)

func (s State) String() string {
	switch s {
	case Booting:
		return "Booting"
	case Running:
		return "Running"
	case Faulted:
		return "Faulted"
	default:
		return "Unknown"
	}
}

var currentState = Booting

// CurrentState returns the controller state
func CurrentState() State {
	return currentState
}

// Boot is the normal entry point. It configures the status LED as an
// output, drives it high and halts. It never returns.
func Boot() {
	driveIndicator()
	currentState = Running
	DebugPrintln("[BOOT] running pin=" + itoa(int(StatusLED)))
	Halt()
}

// Fault is the panic entry point. The payload is accepted so the caller can
// hand over whatever it recovered, but it is never inspected. Interrupts are
// masked first so no handler touches the port afterwards. The LED ends in the
// same state as after Boot. It never returns.
func Fault(payload interface{}) {
	_ = payload
	disableInterrupts()
	driveIndicator()
	currentState = Faulted
	DebugPrintln("[BOOT] faulted pin=" + itoa(int(StatusLED)))
	Halt()
}

// Recover routes a panic into Fault. It must be deferred directly:
//
//	defer core.Recover()
func Recover() {
	if r := recover(); r != nil {
		Fault(r)
	}
}

// driveIndicator is the write sequence shared by both entry points
func driveIndicator() {
	SetDirection(StatusLED, Output)
	SetValue(StatusLED, High)
}
