package pad

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingEncoder captures every committed state and trips if the Mux
// ever lets two encodes overlap.
type recordingEncoder struct {
	states   []State
	inFlight int32
	overlap  bool
	err      error
}

func (r *recordingEncoder) Encode(st State) error {
	if !atomic.CompareAndSwapInt32(&r.inFlight, 0, 1) {
		r.overlap = true
	}
	r.states = append(r.states, st)
	atomic.StoreInt32(&r.inFlight, 0)
	return r.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMuxCommitsEveryMutationInOrder(t *testing.T) {
	enc := &recordingEncoder{}
	mux := NewMux(enc, testLogger())

	mux.Press(ButtonA)
	mux.SetDPad(DirUp)
	mux.SetLeftAxis(0, 255)
	mux.Release(ButtonA)

	if !assert.Len(t, enc.states, 4) {
		return
	}
	assert.Equal(t, uint16(1)<<ButtonA, enc.states[0].Buttons)
	assert.Equal(t, DirCentered, enc.states[0].DPad)

	assert.Equal(t, DirUp, enc.states[1].DPad)
	assert.Equal(t, uint16(1)<<ButtonA, enc.states[1].Buttons, "press survives dpad change")

	assert.Equal(t, uint8(0), enc.states[2].LX)
	assert.Equal(t, uint8(255), enc.states[2].LY)
	assert.Equal(t, AxisCenter, enc.states[2].RX, "right stick untouched")

	assert.Equal(t, uint16(0), enc.states[3].Buttons)
	assert.Equal(t, DirUp, enc.states[3].DPad, "release leaves dpad alone")
}

func TestMuxReset(t *testing.T) {
	enc := &recordingEncoder{}
	mux := NewMux(enc, testLogger())

	mux.Press(ButtonPlus)
	mux.SetRightAxis(9, 9)
	mux.Reset()

	last := enc.states[len(enc.states)-1]
	assert.Equal(t, Centered(), last)
}

func TestMuxSerializesConcurrentSources(t *testing.T) {
	enc := &recordingEncoder{}
	mux := NewMux(enc, testLogger())

	const sources = 8
	const rounds = 200

	var wg sync.WaitGroup
	for i := 0; i < sources; i++ {
		wg.Add(1)
		go func(b Button) {
			defer wg.Done()
			for n := 0; n < rounds; n++ {
				mux.Press(b)
				mux.Release(b)
			}
		}(Button(i))
	}
	wg.Wait()

	assert.False(t, enc.overlap, "encoder entered concurrently")
	assert.Len(t, enc.states, sources*rounds*2)
	assert.Equal(t, uint16(0), enc.states[len(enc.states)-1].Buttons,
		"every press is matched by a release")
}

func TestMuxSwallowsEncoderErrors(t *testing.T) {
	enc := &recordingEncoder{err: io.ErrClosedPipe}
	mux := NewMux(enc, testLogger())

	// Must not panic or wedge; the next mutation still reaches the encoder.
	mux.Press(ButtonB)
	mux.Release(ButtonB)
	assert.Len(t, enc.states, 2)
}
