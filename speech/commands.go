package speech

import "github.com/padmux/padmux/pad"

// Command is the timed control set one phrase engages.
type Command struct {
	Buttons []pad.Button
	DPad    *pad.Direction
}

// Table literal helpers.

func buttons(bs ...pad.Button) Command { return Command{Buttons: bs} }

func dpad(d pad.Direction) Command { return Command{DPad: &d} }

func combo(d pad.Direction, bs ...pad.Button) Command {
	return Command{Buttons: bs, DPad: &d}
}

// commands maps recognized phrases to controls. Several spellings per
// action absorb the recognizer's favorite mishearings ("baker", "perry",
// "centre camera").
var commands = map[string]Command{
	"left and right": buttons(pad.ButtonLeftTrigger, pad.ButtonRightTrigger),
	"left trigger":   buttons(pad.ButtonLeftTrigger),
	"left button":    buttons(pad.ButtonLeftTrigger),
	"right trigger":  buttons(pad.ButtonRightTrigger),
	"right button":   buttons(pad.ButtonRightTrigger),
	"left throttle":  buttons(pad.ButtonLeftThrottle),
	"right throttle": buttons(pad.ButtonRightThrottle),
	"plus":           buttons(pad.ButtonPlus),
	"options":        buttons(pad.ButtonPlus),
	"minus":          buttons(pad.ButtonMinus),
	"capture":        buttons(pad.ButtonCapture),
	"go home":        buttons(pad.ButtonHome),
	"home":           buttons(pad.ButtonHome),
	"okay":           buttons(pad.ButtonA),
	"continue":       buttons(pad.ButtonA),
	"confirm":        buttons(pad.ButtonA),
	"start":          buttons(pad.ButtonA),
	"back":           buttons(pad.ButtonB),
	"go back":        buttons(pad.ButtonB),
	"baker":          buttons(pad.ButtonB),
	"cancel":         buttons(pad.ButtonX),
	"close":          buttons(pad.ButtonX),

	"direction up":    dpad(pad.DirUp),
	"direction down":  dpad(pad.DirDown),
	"direction left":  dpad(pad.DirLeft),
	"direction right": dpad(pad.DirRight),
	"move up":         dpad(pad.DirUp),
	"move down":       dpad(pad.DirDown),
	"move left":       dpad(pad.DirLeft),
	"move right":      dpad(pad.DirRight),

	// Pinball
	"launch ball": buttons(pad.ButtonA),

	// Zelda BOTW
	"jump":          buttons(pad.ButtonX),
	"climb":         buttons(pad.ButtonX),
	"attack":        buttons(pad.ButtonY),
	"fight":         buttons(pad.ButtonY),
	"take":          buttons(pad.ButtonA),
	"crouch":        buttons(pad.ButtonLeftStick),
	"crunch":        buttons(pad.ButtonLeftStick),
	"zoom":          buttons(pad.ButtonRightStick),
	"long distance": buttons(pad.ButtonRightStick),
	"look far":      buttons(pad.ButtonRightStick),
	"use rune":      buttons(pad.ButtonLeftTrigger),
	"use spell":     buttons(pad.ButtonLeftTrigger),
	"use magic":     buttons(pad.ButtonLeftTrigger),
	"throw":         buttons(pad.ButtonRightTrigger),
	"switch shield": combo(pad.DirLeft, pad.ButtonRightTrigger),
	"switch weapon": combo(pad.DirRight, pad.ButtonRightTrigger),
	"switch magic":  combo(pad.DirUp, pad.ButtonRightTrigger),
	"which shield":  combo(pad.DirLeft, pad.ButtonRightTrigger),
	"which weapon":  combo(pad.DirRight, pad.ButtonRightTrigger),
	"which magic":   combo(pad.DirUp, pad.ButtonRightTrigger),
	"change shield": combo(pad.DirLeft, pad.ButtonRightTrigger),
	"change weapon": combo(pad.DirRight, pad.ButtonRightTrigger),
	"change magic":  combo(pad.DirUp, pad.ButtonRightTrigger),
	"center camera": buttons(pad.ButtonLeftThrottle),
	"enter camera":  buttons(pad.ButtonLeftThrottle),
	"centre camera": buttons(pad.ButtonLeftThrottle),
	"camera":        buttons(pad.ButtonLeftThrottle),
	"lock on":       buttons(pad.ButtonLeftThrottle),
	"raise shield":  buttons(pad.ButtonLeftThrottle),
	"parry":         buttons(pad.ButtonLeftThrottle, pad.ButtonA),
	"perry":         buttons(pad.ButtonLeftThrottle, pad.ButtonA),
	"block":         buttons(pad.ButtonLeftThrottle, pad.ButtonA),
	"back flip":     buttons(pad.ButtonLeftThrottle, pad.ButtonX, pad.ButtonLeftTrigger),
	"shield surf":   buttons(pad.ButtonLeftThrottle, pad.ButtonX, pad.ButtonA),
	"use bow":       buttons(pad.ButtonRightThrottle),
	"whistle":       dpad(pad.DirDown),
	"call horse":    dpad(pad.DirDown),
	"called horse":  dpad(pad.DirDown),
	"all horse":     dpad(pad.DirDown),
	"horse":         dpad(pad.DirDown),
	"a horse":       dpad(pad.DirDown),
	"get horse":     dpad(pad.DirDown),
	"get a horse":   dpad(pad.DirDown),
	"open slate":    buttons(pad.ButtonMinus),
	"pause":         buttons(pad.ButtonPlus),
}
