// Package nsgadget speaks the serial protocol of the NSGadget gamepad
// peripheral: a microcontroller wired to the console that enumerates as
// a compliant gamepad and mirrors whatever state it is fed over UART.
package nsgadget

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/padmux/padmux/pad"
)

// ReportTag opens every frame so the gadget can resynchronize after a
// dropped byte.
const ReportTag = 0xA1

// ReportLen is the fixed wire size of one report.
const ReportLen = 8

// Report is one complete gamepad state frame. Every mutation ships the
// full state, so a corrupted frame heals with the next one.
//
// Layout (indices in the marshalled frame):
//
//	 0: 0xA1              - frame tag
//	1-2: Buttons           - big-endian bitmask, bit position = pad.Button code
//	 3: DPad              - hat encoding, 8 = centered
//	 4: LX
//	 5: LY
//	 6: RX
//	 7: RY
type Report struct {
	Buttons uint16
	DPad    uint8
	LX, LY  uint8
	RX, RY  uint8
}

// NewReport snapshots one aggregated gamepad state as a wire frame.
func NewReport(s pad.State) Report {
	return Report{
		Buttons: s.Buttons,
		DPad:    uint8(s.DPad),
		LX:      s.LX,
		LY:      s.LY,
		RX:      s.RX,
		RY:      s.RY,
	}
}

// MarshalBinary encodes the report to its 8-byte frame.
func (r Report) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportLen)
	b[0] = ReportTag
	binary.BigEndian.PutUint16(b[1:3], r.Buttons)
	b[3] = r.DPad
	b[4] = r.LX
	b[5] = r.LY
	b[6] = r.RX
	b[7] = r.RY
	return b, nil
}

// UnmarshalBinary decodes an 8-byte frame into the report.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < ReportLen {
		return io.ErrUnexpectedEOF
	}
	if data[0] != ReportTag {
		return fmt.Errorf("bad frame tag 0x%02x", data[0])
	}
	r.Buttons = binary.BigEndian.Uint16(data[1:3])
	r.DPad = data[3]
	r.LX = data[4]
	r.LY = data[5]
	r.RX = data[6]
	r.RY = data[7]
	return nil
}
