package profile

import "github.com/padmux/padmux/pad"

// DragonRise arcade sticks come as singles: one stick and up to ten
// buttons, half of a full gamepad. Two are paired by the registry; the
// left unit synthesizes the dpad out of its four top-row buttons, the
// right unit carries the face buttons. The spare base buttons double up
// as Capture/Home so both are reachable from either cabinet side.

var DragonRiseLeft = &Profile{
	Name: "DragonRise left",
	Buttons: []ButtonAction{
		press(pad.ButtonLeftThrottle),
		press(pad.ButtonLeftTrigger),
		press(pad.ButtonMinus),
		dpadBit(pad.DPadUp),
		dpadBit(pad.DPadRight),
		dpadBit(pad.DPadDown),
		dpadBit(pad.DPadLeft),
		press(pad.ButtonLeftStick),
		press(pad.ButtonCapture),
		press(pad.ButtonCapture),
		press(pad.ButtonCapture),
		press(pad.ButtonCapture),
	},
	Axes: map[uint8]AxisAction{
		0: stick(LeftX),
		1: stick(LeftY),
	},
}

var DragonRiseRight = &Profile{
	Name: "DragonRise right",
	Buttons: []ButtonAction{
		press(pad.ButtonRightThrottle),
		press(pad.ButtonRightTrigger),
		press(pad.ButtonPlus),
		press(pad.ButtonA),
		press(pad.ButtonB),
		press(pad.ButtonX),
		press(pad.ButtonY),
		press(pad.ButtonRightStick),
		press(pad.ButtonHome),
		press(pad.ButtonHome),
		press(pad.ButtonHome),
		press(pad.ButtonHome),
	},
	Axes: map[uint8]AxisAction{
		0: stick(RightX),
		1: stick(RightY),
	},
}
