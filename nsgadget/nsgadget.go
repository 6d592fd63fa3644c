package nsgadget

import (
	"fmt"
	"io"
	"log/slog"

	"go.bug.st/serial"

	"github.com/padmux/padmux/internal/log"
	"github.com/padmux/padmux/pad"
)

// DefaultBaud is the fastest rate both the Pi's own UART and a CP210x
// USB adapter sustain.
const DefaultBaud = 2000000

// probePaths are tried in order when no port is configured: the Pi
// UART header first, then a USB serial adapter.
var probePaths = []string{"/dev/ttyAMA0", "/dev/ttyUSB0"}

// Encoder turns aggregated gamepad state into report frames on the
// serial link. It implements pad.Encoder. The Mux serializes its calls,
// so Encode never runs concurrently with itself.
type Encoder struct {
	w   io.Writer
	raw log.RawLogger
}

// NewEncoder frames state onto w. Frames are hex-dumped to raw when it
// is enabled.
func NewEncoder(w io.Writer, raw log.RawLogger) *Encoder {
	return &Encoder{w: w, raw: raw}
}

// Encode writes one full-state report.
func (e *Encoder) Encode(s pad.State) error {
	frame, err := NewReport(s).MarshalBinary()
	if err != nil {
		return err
	}
	e.raw.Log(true, frame)
	if _, err := e.w.Write(frame); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Open connects to the gadget. An empty port name probes the default
// candidate paths in order and settles on the first that opens.
func Open(port string, baud int, logger *slog.Logger) (serial.Port, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	candidates := probePaths
	if port != "" {
		candidates = []string{port}
	}
	var lastErr error
	for _, path := range candidates {
		p, err := serial.Open(path, mode)
		if err != nil {
			lastErr = err
			logger.Debug("Gadget port not present", "port", path, "error", err)
			continue
		}
		logger.Info("Connected to NSGadget", "port", path, "baud", baud)
		return p, nil
	}
	return nil, fmt.Errorf("no NSGadget serial port found: %w", lastErr)
}
