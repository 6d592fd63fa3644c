// Package gpio maps panel buttons wired to Raspberry Pi header pins
// onto the shared gamepad sink. Pins are pulled up and switched to
// ground, so a falling edge is a press and a rising edge a release.
package gpio

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"github.com/padmux/padmux/pad"
)

// DefaultChip is the Pi's GPIO controller.
const DefaultChip = "gpiochip0"

// debouncePeriod filters mechanical switch bounce in the kernel.
const debouncePeriod = 10 * time.Millisecond

// action is what one pin drives: an abstract button or one bit of the
// panel's synthesized dpad.
type action struct {
	button pad.Button
	bit    pad.DPadBit
	isDPad bool
}

// pinMap is the BCM-numbered wiring of the button panel, left side
// first.
var pinMap = map[int]action{
	4:  {button: pad.ButtonLeftThrottle},
	17: {button: pad.ButtonLeftTrigger},
	27: {button: pad.ButtonMinus},
	22: {button: pad.ButtonCapture},
	5:  {bit: pad.DPadUp, isDPad: true},
	6:  {bit: pad.DPadRight, isDPad: true},
	13: {bit: pad.DPadDown, isDPad: true},
	19: {bit: pad.DPadLeft, isDPad: true},
	26: {button: pad.ButtonLeftStick},

	23: {button: pad.ButtonRightThrottle},
	24: {button: pad.ButtonRightTrigger},
	25: {button: pad.ButtonPlus},
	8:  {button: pad.ButtonHome},
	7:  {button: pad.ButtonA},
	12: {button: pad.ButtonB},
	16: {button: pad.ButtonX},
	20: {button: pad.ButtonY},
	21: {button: pad.ButtonRightStick},
}

// Source owns the requested lines and the panel's private dpad mask.
type Source struct {
	sink   pad.Sink
	logger *slog.Logger

	mu   sync.Mutex
	dpad pad.DPadMask

	lines *gpiocdev.Lines
}

// New requests every mapped pin on chip and starts delivering edge
// events to sink. Close releases the lines.
func New(chip string, sink pad.Sink, logger *slog.Logger) (*Source, error) {
	s := &Source{sink: sink, logger: logger}

	offsets := make([]int, 0, len(pinMap))
	for pin := range pinMap {
		offsets = append(offsets, pin)
	}
	sort.Ints(offsets)

	lines, err := gpiocdev.RequestLines(chip, offsets,
		gpiocdev.WithConsumer("padmux"),
		gpiocdev.WithPullUp,
		gpiocdev.WithBothEdges,
		gpiocdev.WithDebounce(debouncePeriod),
		gpiocdev.WithEventHandler(s.handleEvent),
	)
	if err != nil {
		return nil, fmt.Errorf("request gpio lines on %s: %w", chip, err)
	}
	s.lines = lines
	logger.Info("GPIO panel attached", "chip", chip, "pins", len(offsets))
	return s, nil
}

// Close releases the requested lines.
func (s *Source) Close() error {
	return s.lines.Close()
}

func (s *Source) handleEvent(evt gpiocdev.LineEvent) {
	act, ok := pinMap[evt.Offset]
	if !ok {
		return
	}
	pressed := evt.Type == gpiocdev.LineEventFallingEdge
	if act.isDPad {
		s.mu.Lock()
		if pressed {
			s.dpad = s.dpad.With(act.bit)
		} else {
			s.dpad = s.dpad.Without(act.bit)
		}
		dir := s.dpad.Direction()
		s.mu.Unlock()
		s.sink.SetDPad(dir)
		return
	}
	if pressed {
		s.sink.Press(act.button)
	} else {
		s.sink.Release(act.button)
	}
}
