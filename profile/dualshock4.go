package profile

import "github.com/padmux/padmux/pad"

// DualShock4 reports its throttles twice: as buttons 6/7 and as analog
// travel on axes 2/5. The buttons win; the analog travel is dropped.
//
//	share   options
//
//	        triangle
//	square          circle
//	        cross
var DualShock4 = &Profile{
	Name: "DualShock 4",
	Buttons: []ButtonAction{
		press(pad.ButtonB), // cross
		press(pad.ButtonA), // circle
		press(pad.ButtonY), // triangle
		press(pad.ButtonX), // square
		press(pad.ButtonLeftTrigger),
		press(pad.ButtonRightTrigger),
		press(pad.ButtonLeftThrottle),
		press(pad.ButtonRightThrottle),
		press(pad.ButtonMinus), // share
		press(pad.ButtonPlus),  // options
		press(pad.ButtonHome),  // logo
		press(pad.ButtonLeftStick),
		press(pad.ButtonRightStick),
	},
	Axes: map[uint8]AxisAction{
		0: stick(LeftX),
		1: stick(LeftY),
		2: {}, // left throttle travel, already covered by button 6
		3: stick(RightX),
		4: stick(RightY),
		5: {}, // right throttle travel, already covered by button 7
		6: dpadAxis(DPadX),
		7: dpadAxis(DPadY),
	},
}
