package speech

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	th "github.com/padmux/padmux/internal/testing"
	"github.com/padmux/padmux/pad"
)

func run(t *testing.T, input string) []th.SinkCall {
	t.Helper()
	sink := &th.RecordingSink{}
	s := &Source{
		r:      strings.NewReader(input),
		sink:   sink,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		hold:   0,
	}
	require.NoError(t, s.Run(context.Background()))
	return sink.Calls()
}

func TestRunSingleButtonPhrase(t *testing.T) {
	calls := run(t, "okay\n")
	assert.Equal(t, []th.SinkCall{
		th.Press(pad.ButtonA),
		th.Release(pad.ButtonA),
	}, calls)
}

func TestRunReleasesInReverseOrder(t *testing.T) {
	calls := run(t, "back flip\n")
	assert.Equal(t, []th.SinkCall{
		th.Press(pad.ButtonLeftThrottle),
		th.Press(pad.ButtonX),
		th.Press(pad.ButtonLeftTrigger),
		th.Release(pad.ButtonLeftTrigger),
		th.Release(pad.ButtonX),
		th.Release(pad.ButtonLeftThrottle),
	}, calls)
}

func TestRunDPadRecentersBeforeRelease(t *testing.T) {
	calls := run(t, "switch weapon\n")
	assert.Equal(t, []th.SinkCall{
		th.Press(pad.ButtonRightTrigger),
		th.DPad(pad.DirRight),
		th.DPad(pad.DirCentered),
		th.Release(pad.ButtonRightTrigger),
	}, calls)
}

func TestRunDPadOnlyPhrase(t *testing.T) {
	calls := run(t, "whistle\n")
	assert.Equal(t, []th.SinkCall{
		th.DPad(pad.DirDown),
		th.DPad(pad.DirCentered),
	}, calls)
}

func TestRunIgnoresUnknownAndBlankLines(t *testing.T) {
	calls := run(t, "abracadabra\n\n  \npause\n")
	assert.Equal(t, []th.SinkCall{
		th.Press(pad.ButtonPlus),
		th.Release(pad.ButtonPlus),
	}, calls)
}

func TestVocabularyIsWellFormed(t *testing.T) {
	assert.NotEmpty(t, commands)
	for phrase, cmd := range commands {
		assert.NotEmptyf(t, phrase, "empty phrase")
		assert.Equalf(t, strings.TrimSpace(phrase), phrase, "phrase %q carries whitespace", phrase)
		if len(cmd.Buttons) == 0 {
			assert.NotNilf(t, cmd.DPad, "phrase %q maps to nothing", phrase)
		}
		for _, b := range cmd.Buttons {
			assert.Truef(t, b.Valid() && b < pad.ButtonReserved14, "phrase %q presses unmappable button %d", phrase, b)
		}
	}
}
