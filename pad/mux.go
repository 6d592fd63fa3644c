package pad

import (
	"log/slog"
	"sync"
)

// State is the complete virtual gamepad state mirrored on the wire after
// every mutation.
type State struct {
	// Button bitfield, bit position = Button value.
	Buttons uint16
	DPad    Direction
	// Sticks: 0..255, 128 center.
	LX, LY uint8
	RX, RY uint8
}

// Centered returns the neutral state: nothing pressed, dpad centered,
// both sticks at rest.
func Centered() State {
	return State{
		DPad: DirCentered,
		LX:   AxisCenter, LY: AxisCenter,
		RX: AxisCenter, RY: AxisCenter,
	}
}

// Encoder writes one committed gamepad state downstream. Implementations
// need not be safe for concurrent use; the Mux never overlaps calls.
type Encoder interface {
	Encode(State) error
}

// Mux is the one shared Sink all input sources write into. It is the
// single serialization point of the process: a mutex covers both the
// state mutation and the downstream write, so concurrent decoders can
// never tear the in-memory state or interleave wire frames. The Mux does
// not deduplicate calls; sources suppress their own redundant traffic.
type Mux struct {
	mu     sync.Mutex
	state  State
	enc    Encoder
	logger *slog.Logger
}

// NewMux returns a Mux forwarding committed states to enc. The initial
// state is neutral but nothing is written until the first mutation or an
// explicit Reset.
func NewMux(enc Encoder, logger *slog.Logger) *Mux {
	return &Mux{
		state:  Centered(),
		enc:    enc,
		logger: logger,
	}
}

// Press marks b held and commits.
func (m *Mux) Press(b Button) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Buttons |= 1 << b
	m.flush()
}

// Release marks b released and commits.
func (m *Mux) Release(b Button) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Buttons &^= 1 << b
	m.flush()
}

// SetLeftAxis moves the left stick and commits.
func (m *Mux) SetLeftAxis(x, y uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.LX, m.state.LY = x, y
	m.flush()
}

// SetRightAxis moves the right stick and commits.
func (m *Mux) SetRightAxis(x, y uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.RX, m.state.RY = x, y
	m.flush()
}

// SetDPad sets the dpad direction and commits.
func (m *Mux) SetDPad(d Direction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.DPad = d
	m.flush()
}

// Reset returns the gamepad to the neutral state and commits, so the
// console sees a quiet pad at startup.
func (m *Mux) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Centered()
	m.flush()
}

// flush writes the current state downstream. Callers hold m.mu; keeping
// the write inside the critical section is what guarantees frame
// integrity on the wire. An encoder error drops this frame only: the
// next mutation carries the full state again.
func (m *Mux) flush() {
	if err := m.enc.Encode(m.state); err != nil {
		m.logger.Error("failed to write gamepad state", "error", err)
	}
}
