package profile

import "github.com/padmux/padmux/pad"

// Extreme3D is the Logitech Extreme 3D Pro flight stick: big X/Y stick
// with an 8-way hat on top, six buttons on the stick and six on the
// base. The stick drives the left thumb and the hat deflects the right
// one; twist and the throttle lever are unused.
//
// Base buttons (2 rows, 3 columns):
//
//	7 9 11
//	6 8 10
var Extreme3D = &Profile{
	Name: "Logitech Extreme 3D Pro",
	Buttons: []ButtonAction{
		press(pad.ButtonA), // front trigger
		press(pad.ButtonB), // side thumb rest
		press(pad.ButtonX), // top large left
		press(pad.ButtonY), // top large right
		press(pad.ButtonLeftTrigger),  // top small left
		press(pad.ButtonRightTrigger), // top small right
		press(pad.ButtonMinus),
		press(pad.ButtonPlus),
		press(pad.ButtonCapture),
		press(pad.ButtonHome),
		press(pad.ButtonLeftThrottle),
		press(pad.ButtonRightThrottle),
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
