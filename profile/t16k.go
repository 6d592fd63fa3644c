package profile

import "github.com/padmux/padmux/pad"

// T16000M is the Thrustmaster T.16000M ambidextrous flight stick: four
// buttons on the stick, twelve on the base. The base right side exposes
// two more indices than the gamepad has buttons; those are reserved and
// only flagged when hit.
//
// Base left:        Base right:
//
//	4                       10
//	9 5                  11 15
//	  8 6             12 14
//	    7             13
var T16000M = &Profile{
	Name: "Thrustmaster T.16000M",
	Buttons: []ButtonAction{
		press(pad.ButtonA), // trigger
		press(pad.ButtonB), // top center
		press(pad.ButtonX), // top left
		press(pad.ButtonY), // top right
		press(pad.ButtonLeftTrigger),
		press(pad.ButtonRightTrigger),
		press(pad.ButtonMinus),
		press(pad.ButtonPlus),
		press(pad.ButtonCapture),
		press(pad.ButtonHome),
		press(pad.ButtonLeftStick),
		press(pad.ButtonRightStick),
		press(pad.ButtonLeftThrottle),
		press(pad.ButtonRightThrottle),
		reserved(),
		reserved(),
	},
	Axes: map[uint8]AxisAction{
		0: stick(LeftX),
		1: stick(LeftY),
		2: {},            // twist
		3: {},            // throttle lever
		4: stick(RightX), // hat
		5: stick(RightY),
	},
}
