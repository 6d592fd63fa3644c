package profile

import "github.com/padmux/padmux/pad"

// XboxOne has fewer buttons than the gadget and reports its throttles as
// analog axes, which the gadget only knows as buttons, so axes 2 and 5
// go through a threshold.
//
//	windows lines
//
//	    Y
//	X       B
//	    A
var XboxOne = &Profile{
	Name: "Xbox One",
	Buttons: []ButtonAction{
		press(pad.ButtonB),
		press(pad.ButtonA),
		press(pad.ButtonY),
		press(pad.ButtonX),
		press(pad.ButtonLeftTrigger),
		press(pad.ButtonRightTrigger),
		press(pad.ButtonMinus), // windows button
		press(pad.ButtonPlus),  // lines button
		press(pad.ButtonHome),  // logo
		press(pad.ButtonLeftStick),
		press(pad.ButtonRightStick),
	},
	Axes: map[uint8]AxisAction{
		0: stick(LeftX),
		1: stick(LeftY),
		2: threshold(pad.ButtonLeftThrottle, 128),
		3: stick(RightX),
		4: stick(RightY),
		5: threshold(pad.ButtonRightThrottle, 128),
		6: dpadAxis(DPadX),
		7: dpadAxis(DPadY),
	},
}
