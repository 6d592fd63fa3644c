// Package pad defines the abstract gamepad shared by every input source:
// the button and direction vocabulary, dpad bit combination, axis
// quantization and the synchronized output state all decoders write into.
package pad

import "fmt"

// Button identifies one abstract gamepad button. The numeric value is the
// button's bit position in State.Buttons and matches the gadget's native
// numbering, so it goes on the wire unchanged.
type Button uint8

const (
	ButtonY Button = iota
	ButtonB
	ButtonA
	ButtonX
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonLeftThrottle
	ButtonRightThrottle
	ButtonMinus
	ButtonPlus
	ButtonLeftStick
	ButtonRightStick
	ButtonHome
	ButtonCapture
	// Two reserved slots keep the wire bitmask 16 bits wide. No controller
	// profile maps onto them.
	ButtonReserved14
	ButtonReserved15

	// ButtonCount is the number of wire button slots, reserved included.
	ButtonCount = 16
)

var buttonNames = [ButtonCount]string{
	"Y", "B", "A", "X",
	"LeftTrigger", "RightTrigger",
	"LeftThrottle", "RightThrottle",
	"Minus", "Plus",
	"LeftStick", "RightStick",
	"Home", "Capture",
	"Reserved14", "Reserved15",
}

func (b Button) String() string {
	if b.Valid() {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// Valid reports whether b is one of the defined wire button slots.
func (b Button) Valid() bool {
	return b < ButtonCount
}
