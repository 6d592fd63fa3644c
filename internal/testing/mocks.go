// Package testing provides shared fakes for exercising decoders and the
// registry without hardware.
package testing

import (
	"io"
	"sync"

	"github.com/padmux/padmux/joystick"
	"github.com/padmux/padmux/pad"
)

// SinkCall is one recorded pad.Sink invocation.
type SinkCall struct {
	Op     string
	Button pad.Button
	X, Y   uint8
	Dir    pad.Direction
}

// Constructors matching the Sink methods, for expected-call tables.

func Press(b pad.Button) SinkCall   { return SinkCall{Op: "press", Button: b} }
func Release(b pad.Button) SinkCall { return SinkCall{Op: "release", Button: b} }
func Left(x, y uint8) SinkCall      { return SinkCall{Op: "left", X: x, Y: y} }
func Right(x, y uint8) SinkCall     { return SinkCall{Op: "right", X: x, Y: y} }
func DPad(d pad.Direction) SinkCall { return SinkCall{Op: "dpad", Dir: d} }

// RecordingSink captures every call in order. It locks so it can stand in
// for the process-wide mux when several decoders share it.
type RecordingSink struct {
	mu    sync.Mutex
	calls []SinkCall
}

func (r *RecordingSink) Press(b pad.Button)      { r.add(Press(b)) }
func (r *RecordingSink) Release(b pad.Button)    { r.add(Release(b)) }
func (r *RecordingSink) SetLeftAxis(x, y uint8)  { r.add(Left(x, y)) }
func (r *RecordingSink) SetRightAxis(x, y uint8) { r.add(Right(x, y)) }
func (r *RecordingSink) SetDPad(d pad.Direction) { r.add(DPad(d)) }

func (r *RecordingSink) add(c SinkCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns a snapshot of everything recorded so far.
func (r *RecordingSink) Calls() []SinkCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SinkCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// ScriptedRead is one scripted ReadEvent result.
type ScriptedRead struct {
	Event joystick.Event
	Err   error
}

// ScriptedSource replays a fixed event sequence and then fails every
// further read, imitating a controller unplugged after its last event.
// The terminal error is Err, or io.EOF when unset.
type ScriptedSource struct {
	Events []ScriptedRead
	Err    error

	mu     sync.Mutex
	pos    int
	closed bool
}

func (s *ScriptedSource) ReadEvent() (joystick.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.Events) {
		if s.Err != nil {
			return joystick.Event{}, s.Err
		}
		return joystick.Event{}, io.EOF
	}
	r := s.Events[s.pos]
	s.pos++
	return r.Event, r.Err
}

func (s *ScriptedSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether the decoder closed the source on exit.
func (s *ScriptedSource) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
