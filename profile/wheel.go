package profile

import "github.com/padmux/padmux/pad"

// HoriWheel is the Hori Mario Kart racing wheel, which identifies itself
// as a generic Xbox pad. The wheel itself streams a dense run of axis 0
// samples and the pedals engage well before half travel, so the wheel
// axis and both pedal thresholds are latched on their last quantized
// value to keep repeats off the wire.
var HoriWheel = &Profile{
	Name: "Hori racing wheel",
	Buttons: []ButtonAction{
		press(pad.ButtonA),
		press(pad.ButtonB),
		press(pad.ButtonX),
		press(pad.ButtonY),
		press(pad.ButtonLeftTrigger),
		press(pad.ButtonRightTrigger),
		press(pad.ButtonMinus),
		press(pad.ButtonPlus),
		press(pad.ButtonHome),
		press(pad.ButtonLeftStick),
		press(pad.ButtonRightStick),
	},
	Axes: map[uint8]AxisAction{
		0: stickLatched(LeftX), // the wheel
		1: stick(LeftY),
		2: thresholdLatched(pad.ButtonLeftThrottle, 64),
		3: stick(RightX),
		4: stick(RightY),
		5: thresholdLatched(pad.ButtonRightThrottle, 64),
		6: dpadAxis(DPadX),
		7: dpadAxis(DPadY),
	},
}
