// Package speech turns recognized phrases into timed gamepad actions.
// Phrases arrive line-by-line on a reader, typically standard input fed
// by a speech-to-text engine; each known phrase presses its controls,
// holds them briefly and releases them in reverse order.
package speech

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/padmux/padmux/pad"
)

// holdDuration is how long a spoken command keeps its controls engaged.
const holdDuration = 75 * time.Millisecond

// Source replays spoken commands onto the shared sink.
type Source struct {
	r      io.Reader
	sink   pad.Sink
	logger *slog.Logger
	hold   time.Duration
}

// New builds a source reading phrases from r.
func New(r io.Reader, sink pad.Sink, logger *slog.Logger) *Source {
	return &Source{r: r, sink: sink, logger: logger, hold: holdDuration}
}

// Run consumes phrases until r is exhausted. Cancellation is observed
// between lines; a read in flight ends when the input closes.
func (s *Source) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		phrase := strings.TrimSpace(scanner.Text())
		if phrase == "" {
			continue
		}
		cmd, ok := commands[phrase]
		if !ok {
			s.logger.Debug("Unknown phrase", "phrase", phrase)
			continue
		}
		s.logger.Info("Spoken command", "phrase", phrase)
		s.execute(cmd)
	}
	return scanner.Err()
}

// execute presses everything the command names, holds, then backs out:
// dpad recenters first, buttons release in reverse press order.
func (s *Source) execute(cmd Command) {
	for _, b := range cmd.Buttons {
		s.sink.Press(b)
	}
	if cmd.DPad != nil {
		s.sink.SetDPad(*cmd.DPad)
	}
	time.Sleep(s.hold)
	if cmd.DPad != nil {
		s.sink.SetDPad(pad.DirCentered)
	}
	for i := len(cmd.Buttons) - 1; i >= 0; i-- {
		s.sink.Release(cmd.Buttons[i])
	}
}
