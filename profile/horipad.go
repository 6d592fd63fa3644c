package profile

import "github.com/padmux/padmux/pad"

// HoriPad is a Switch-native gamepad, so raw indices already carry the
// gadget's own numbering and map straight through.
var HoriPad = &Profile{
	Name: "HoriPad",
	Buttons: []ButtonAction{
		press(pad.ButtonY),
		press(pad.ButtonB),
		press(pad.ButtonA),
		press(pad.ButtonX),
		press(pad.ButtonLeftTrigger),
		press(pad.ButtonRightTrigger),
		press(pad.ButtonLeftThrottle),
		press(pad.ButtonRightThrottle),
		press(pad.ButtonMinus),
		press(pad.ButtonPlus),
		press(pad.ButtonLeftStick),
		press(pad.ButtonRightStick),
		press(pad.ButtonHome),
		press(pad.ButtonCapture),
	},
	Axes: map[uint8]AxisAction{
		0: stick(LeftX),
		1: stick(LeftY),
		2: stick(RightX),
		3: stick(RightY),
		4: dpadAxis(DPadX),
		5: dpadAxis(DPadY),
	},
}
