package profile

import (
	"errors"
	"io"
	"log/slog"

	"github.com/padmux/padmux/joystick"
	"github.com/padmux/padmux/pad"
)

// Source is the raw event stream a Decoder consumes. *joystick.Device
// implements it; tests substitute scripted streams.
type Source interface {
	ReadEvent() (joystick.Event, error)
	Close() error
}

// Decoder turns one device's raw events into sink calls using one
// profile. Each decoder runs as its own goroutine and owns its source
// exclusively, so its dpad mask, stick cache and axis latches need no
// locking; the sink is the only shared object it touches.
type Decoder struct {
	src    Source
	prof   *Profile
	sink   pad.Sink
	logger *slog.Logger

	dpad     pad.DPadMask
	sticks   [4]uint8 // indexed by StickTarget
	lastAxis map[uint8]uint8
}

// NewDecoder binds src to sink through prof.
func NewDecoder(src Source, prof *Profile, sink pad.Sink, logger *slog.Logger) *Decoder {
	return &Decoder{
		src:    src,
		prof:   prof,
		sink:   sink,
		logger: logger,
		sticks: [4]uint8{
			pad.AxisCenter, pad.AxisCenter,
			pad.AxisCenter, pad.AxisCenter,
		},
		lastAxis: make(map[uint8]uint8),
	}
}

// Run consumes the event stream until the device goes away, then closes
// the source and returns. A truncated record is skipped; any other read
// failure is the unplug signal and the decoder's sole exit condition.
func (d *Decoder) Run() {
	for {
		ev, err := d.src.ReadEvent()
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				d.logger.Debug("truncated event record, skipping")
				continue
			}
			_ = d.src.Close()
			d.logger.Info("controller disconnected", "error", err)
			return
		}
		d.dispatch(ev)
	}
}

func (d *Decoder) dispatch(ev joystick.Event) {
	switch ev.Kind {
	case joystick.EventButton:
		d.buttonEvent(ev)
	case joystick.EventAxis:
		d.axisEvent(ev)
	default:
		// Synthetic init replays and unknown kinds are dropped.
	}
}

func (d *Decoder) buttonEvent(ev joystick.Event) {
	if int(ev.Index) >= len(d.prof.Buttons) {
		return
	}
	act := d.prof.Buttons[ev.Index]
	switch act.Kind {
	case ButtonPress:
		if ev.Value != 0 {
			d.sink.Press(act.Button)
		} else {
			d.sink.Release(act.Button)
		}
	case ButtonDPad:
		if ev.Value != 0 {
			d.dpad = d.dpad.With(act.Bit)
		} else {
			d.dpad = d.dpad.Without(act.Bit)
		}
		d.sink.SetDPad(d.dpad.Direction())
	case ButtonReserved:
		d.logger.Debug("reserved button index", "index", ev.Index, "value", ev.Value)
	}
}

func (d *Decoder) axisEvent(ev joystick.Event) {
	act, ok := d.prof.Axes[ev.Index]
	if !ok {
		return
	}
	q := pad.Quantize(ev.Value)
	if act.Latched {
		if last, seen := d.lastAxis[ev.Index]; seen && last == q {
			return
		}
		d.lastAxis[ev.Index] = q
	}
	switch act.Kind {
	case AxisStick:
		d.sticks[act.Target] = q
		if act.Target == LeftX || act.Target == LeftY {
			d.sink.SetLeftAxis(d.sticks[LeftX], d.sticks[LeftY])
		} else {
			d.sink.SetRightAxis(d.sticks[RightX], d.sticks[RightY])
		}
	case AxisDPad:
		d.dpad = foldDPadAxis(d.dpad, act.DPad, q)
		d.sink.SetDPad(d.dpad.Direction())
	case AxisButton:
		if q > act.Threshold {
			d.sink.Press(act.Button)
		} else {
			d.sink.Release(act.Button)
		}
	}
}

// foldDPadAxis applies one quantized hat-axis sample to the mask: below
// center presses the negative direction (left or up), above center the
// positive one, center releases both.
func foldDPadAxis(m pad.DPadMask, axis DPadAxis, q uint8) pad.DPadMask {
	neg, pos := pad.DPadLeft, pad.DPadRight
	if axis == DPadY {
		neg, pos = pad.DPadUp, pad.DPadDown
	}
	switch {
	case q < pad.AxisCenter:
		return m.With(neg).Without(pos)
	case q > pad.AxisCenter:
		return m.With(pos).Without(neg)
	default:
		return m.Without(neg).Without(pos)
	}
}
