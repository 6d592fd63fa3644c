package nsgadget

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padmux/padmux/internal/log"
	"github.com/padmux/padmux/pad"
)

func TestReportMarshalLayout(t *testing.T) {
	r := Report{
		Buttons: 1<<pad.ButtonA | 1<<pad.ButtonPlus,
		DPad:    uint8(pad.DirUpLeft),
		LX:      0,
		LY:      255,
		RX:      128,
		RY:      7,
	}
	frame, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA1, 0x02, 0x04, 0x07, 0x00, 0xFF, 0x80, 0x07}, frame)
}

func TestReportMarshalCentered(t *testing.T) {
	frame, err := NewReport(pad.Centered()).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA1, 0x00, 0x00, 0x08, 0x80, 0x80, 0x80, 0x80}, frame)
}

func TestReportUnmarshalRoundTrip(t *testing.T) {
	in := Report{
		Buttons: 1<<pad.ButtonHome | 1<<pad.ButtonY,
		DPad:    uint8(pad.DirDown),
		LX:      1, LY: 2, RX: 3, RY: 4,
	}
	frame, err := in.MarshalBinary()
	require.NoError(t, err)

	var out Report
	require.NoError(t, out.UnmarshalBinary(frame))
	assert.Equal(t, in, out)
}

func TestReportUnmarshalShortFrame(t *testing.T) {
	var r Report
	err := r.UnmarshalBinary([]byte{0xA1, 0x00, 0x00})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReportUnmarshalBadTag(t *testing.T) {
	var r Report
	err := r.UnmarshalBinary([]byte{0x55, 0, 0, 8, 128, 128, 128, 128})
	assert.ErrorContains(t, err, "bad frame tag")
}

func TestEncoderWritesFrames(t *testing.T) {
	var wire, dump bytes.Buffer
	enc := NewEncoder(&wire, log.NewRaw(&dump))

	state := pad.Centered()
	state.Buttons = 1 << pad.ButtonB
	require.NoError(t, enc.Encode(state))

	assert.Equal(t, []byte{0xA1, 0x00, 0x02, 0x08, 0x80, 0x80, 0x80, 0x80}, wire.Bytes())
	assert.Contains(t, dump.String(), "TX frame: 8 bytes")
	assert.Contains(t, dump.String(), "a1 00 02 08 80 80 80 80")
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestEncoderPropagatesWriteErrors(t *testing.T) {
	broken := errors.New("gadget gone")
	enc := NewEncoder(failingWriter{err: broken}, log.NewRaw(nil))

	err := enc.Encode(pad.Centered())
	assert.ErrorIs(t, err, broken)
}
