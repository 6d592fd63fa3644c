// Package profile holds the static decode tables for every supported
// controller model and the decoder that applies them. A profile maps raw
// joystick button/axis indices onto the abstract gamepad; the tables are
// built once, validated, and shared read-only by all decoder instances.
package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/padmux/padmux/pad"
)

// ButtonActionKind selects what one raw button index drives.
type ButtonActionKind uint8

const (
	// ButtonIgnore drops the event. Unmapped indices behave the same.
	ButtonIgnore ButtonActionKind = iota
	// ButtonPress forwards press/release of an abstract button.
	ButtonPress
	// ButtonDPad toggles one bit of the decoder's synthesized dpad.
	ButtonDPad
	// ButtonReserved marks an index the hardware reports but the gamepad
	// has no defined meaning for; flagged in the log, never forwarded.
	ButtonReserved
)

// ButtonAction is one entry of a profile's button map.
type ButtonAction struct {
	Kind   ButtonActionKind
	Button pad.Button  // ButtonPress target
	Bit    pad.DPadBit // ButtonDPad target
}

// AxisActionKind selects how one raw axis index is consumed.
type AxisActionKind uint8

const (
	// AxisIgnore drops the event. Unmapped indices behave the same.
	AxisIgnore AxisActionKind = iota
	// AxisStick passes the quantized value through to a stick coordinate.
	AxisStick
	// AxisDPad folds the quantized value into the synthesized dpad, for
	// hats the kernel reports as an axis pair.
	AxisDPad
	// AxisButton converts the analog value to a button through a
	// threshold, for triggers and throttles reported as axes.
	AxisButton
)

// StickTarget names one coordinate of the two thumbsticks.
type StickTarget uint8

const (
	LeftX StickTarget = iota
	LeftY
	RightX
	RightY
)

// DPadAxis names one axis of a two-axis hat.
type DPadAxis uint8

const (
	DPadX DPadAxis = iota
	DPadY
)

// AxisAction is one entry of a profile's axis map.
type AxisAction struct {
	Kind   AxisActionKind
	Target StickTarget // AxisStick
	DPad   DPadAxis    // AxisDPad
	Button pad.Button  // AxisButton
	// Threshold: pressed while the quantized value is strictly above it.
	Threshold uint8
	// Latched suppresses an event whose quantized value equals the last
	// one seen on the same axis, keeping redundant traffic off the wire.
	Latched bool
}

// Profile is the immutable decode table for one controller model.
type Profile struct {
	Name string
	// Buttons is indexed by raw button index; events beyond its length
	// are ignored.
	Buttons []ButtonAction
	// Axes is keyed by raw axis index; missing indices are ignored.
	Axes map[uint8]AxisAction
}

func (p *Profile) validate() error {
	if p.Name == "" {
		return errors.New("empty profile name")
	}
	for i, a := range p.Buttons {
		switch a.Kind {
		case ButtonIgnore, ButtonReserved:
		case ButtonPress:
			if !a.Button.Valid() || a.Button >= pad.ButtonReserved14 {
				return fmt.Errorf("button %d: target %s is not a mappable button", i, a.Button)
			}
		case ButtonDPad:
			if a.Bit > pad.DPadLeft {
				return fmt.Errorf("button %d: dpad bit %d out of range", i, a.Bit)
			}
		default:
			return fmt.Errorf("button %d: unknown action kind %d", i, a.Kind)
		}
	}
	for idx, a := range p.Axes {
		switch a.Kind {
		case AxisIgnore:
		case AxisStick:
			if a.Target > RightY {
				return fmt.Errorf("axis %d: stick target %d out of range", idx, a.Target)
			}
		case AxisDPad:
			if a.DPad > DPadY {
				return fmt.Errorf("axis %d: dpad axis %d out of range", idx, a.DPad)
			}
		case AxisButton:
			if !a.Button.Valid() || a.Button >= pad.ButtonReserved14 {
				return fmt.Errorf("axis %d: target %s is not a mappable button", idx, a.Button)
			}
		default:
			return fmt.Errorf("axis %d: unknown action kind %d", idx, a.Kind)
		}
	}
	return nil
}

// Table literal helpers.

func press(b pad.Button) ButtonAction {
	return ButtonAction{Kind: ButtonPress, Button: b}
}

func dpadBit(bit pad.DPadBit) ButtonAction {
	return ButtonAction{Kind: ButtonDPad, Bit: bit}
}

func reserved() ButtonAction {
	return ButtonAction{Kind: ButtonReserved}
}

func stick(t StickTarget) AxisAction {
	return AxisAction{Kind: AxisStick, Target: t}
}

func stickLatched(t StickTarget) AxisAction {
	return AxisAction{Kind: AxisStick, Target: t, Latched: true}
}

func dpadAxis(a DPadAxis) AxisAction {
	return AxisAction{Kind: AxisDPad, DPad: a}
}

func threshold(b pad.Button, level uint8) AxisAction {
	return AxisAction{Kind: AxisButton, Button: b, Threshold: level}
}

func thresholdLatched(b pad.Button, level uint8) AxisAction {
	return AxisAction{Kind: AxisButton, Button: b, Threshold: level, Latched: true}
}

// Signature binds an uppercase device-name substring to the profiles it
// selects. A signature with more than one profile alternates per
// discovery: one DragonRise arcade stick is only half a gamepad, so the
// first discovered of a pair becomes the left side and the second the
// right.
type Signature struct {
	Match    string
	Profiles []*Profile
}

// Pick returns the profile for the n-th discovery of this signature
// (counted from 0).
func (s Signature) Pick(n int) *Profile {
	return s.Profiles[n%len(s.Profiles)]
}

// signatures lists the known controllers in match priority order.
var signatures = []Signature{
	{Match: "HORIPAD", Profiles: []*Profile{HoriPad}},
	{Match: "DRAGONRISE INC.", Profiles: []*Profile{DragonRiseLeft, DragonRiseRight}},
	{Match: "LOGITECH EXTREME 3D", Profiles: []*Profile{Extreme3D}},
	{Match: "THRUSTMASTER T.16000M", Profiles: []*Profile{T16000M}},
	{Match: "MICROSOFT X-BOX ONE", Profiles: []*Profile{XboxOne}},
	{Match: "SONY INTERACTIVE ENTERTAINMENT WIRELESS CONTROLLER", Profiles: []*Profile{DualShock4}},
	{Match: "GENERIC X-BOX PAD", Profiles: []*Profile{HoriWheel}},
}

func init() {
	for _, sig := range signatures {
		if len(sig.Profiles) == 0 {
			panic("profile: signature " + sig.Match + " has no profiles")
		}
		for _, p := range sig.Profiles {
			if err := p.validate(); err != nil {
				panic(fmt.Sprintf("profile %q: %v", p.Name, err))
			}
		}
	}
}

// Match finds the first signature whose substring occurs in the device
// name, case-insensitively. The bool is false for unknown devices.
func Match(name string) (Signature, bool) {
	upper := strings.ToUpper(name)
	for _, s := range signatures {
		if strings.Contains(upper, s.Match) {
			return s, true
		}
	}
	return Signature{}, false
}
