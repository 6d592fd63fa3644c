package pad

// Sink is the capability every input source holds on the shared gamepad.
// Implementations must apply each call atomically with respect to every
// other call from any goroutine; sources never read state back.
type Sink interface {
	Press(b Button)
	Release(b Button)
	SetLeftAxis(x, y uint8)
	SetRightAxis(x, y uint8)
	SetDPad(d Direction)
}
