package registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	th "github.com/padmux/padmux/internal/testing"
	"github.com/padmux/padmux/joystick"
	"github.com/padmux/padmux/pad"
	"github.com/padmux/padmux/profile"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRegistry(sink pad.Sink, discover func(string) ([]string, error), open func(string) (profile.Source, string, error)) *Registry {
	return &Registry{
		dir:      "/dev/input",
		interval: time.Millisecond,
		sink:     sink,
		logger:   testLogger(),
		discover: discover,
		open:     open,
		tracked:  make(map[string]*unit),
		counts:   make(map[string]int),
	}
}

func paths(ps ...string) func(string) ([]string, error) {
	return func(string) ([]string, error) { return ps, nil }
}

// hangingSource plays back a fixed set of events and then blocks like a
// real device waiting for input, until unplug releases it with a read
// error.
type hangingSource struct {
	events []joystick.Event
	pos    int

	release chan struct{}
	once    sync.Once

	mu     sync.Mutex
	closed bool
}

func newHangingSource(t *testing.T, events ...joystick.Event) *hangingSource {
	t.Helper()
	h := &hangingSource{events: events, release: make(chan struct{})}
	t.Cleanup(h.unplug)
	return h
}

func (h *hangingSource) unplug() { h.once.Do(func() { close(h.release) }) }

func (h *hangingSource) ReadEvent() (joystick.Event, error) {
	if h.pos < len(h.events) {
		ev := h.events[h.pos]
		h.pos++
		return ev, nil
	}
	<-h.release
	return joystick.Event{}, io.EOF
}

func (h *hangingSource) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

func (h *hangingSource) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func TestRegistryAttachesRecognizedControllers(t *testing.T) {
	sink := &th.RecordingSink{}
	horipad := newHangingSource(t, joystick.Event{Kind: joystick.EventButton, Index: 2, Value: 1})
	keyboard := &th.ScriptedSource{}

	open := func(path string) (profile.Source, string, error) {
		switch path {
		case "/dev/input/js1":
			return horipad, "HORIPAD S", nil
		case "/dev/input/js2":
			return keyboard, "Acme USB Keyboard", nil
		default:
			return nil, "", os.ErrNotExist
		}
	}
	// The broken candidate comes first: a single bad device must not
	// cut the rest of the scan short.
	r := newTestRegistry(sink, paths("/dev/input/js0", "/dev/input/js1", "/dev/input/js2"), open)

	r.poll()

	require.Len(t, r.tracked, 1)
	require.Contains(t, r.tracked, "/dev/input/js1")
	assert.Equal(t, profile.HoriPad, r.tracked["/dev/input/js1"].profile)
	assert.True(t, keyboard.Closed(), "unmatched device handles must be closed")

	assert.Eventually(t, func() bool {
		return len(sink.Calls()) == 1
	}, time.Second, time.Millisecond, "decoder should route events to the sink")
	assert.Equal(t, []th.SinkCall{th.Press(pad.ButtonA)}, sink.Calls())
}

func TestRegistryAssignsArcadePairRoles(t *testing.T) {
	sink := &th.RecordingSink{}
	stick := joystick.Event{Kind: joystick.EventAxis, Index: 0, Value: 32767}
	first := newHangingSource(t, stick)
	second := newHangingSource(t, stick)

	open := func(path string) (profile.Source, string, error) {
		if path == "/dev/input/js0" {
			return first, "DragonRise Inc.   Generic   USB  Joystick  ", nil
		}
		return second, "DragonRise Inc.   Generic   USB  Joystick  ", nil
	}
	r := newTestRegistry(sink, paths("/dev/input/js0", "/dev/input/js1"), open)

	r.poll()

	require.Len(t, r.tracked, 2)
	assert.Equal(t, profile.DragonRiseLeft, r.tracked["/dev/input/js0"].profile)
	assert.Equal(t, profile.DragonRiseRight, r.tracked["/dev/input/js1"].profile)

	assert.Eventually(t, func() bool {
		return len(sink.Calls()) == 2
	}, time.Second, time.Millisecond)
	assert.ElementsMatch(t, []th.SinkCall{
		th.Left(255, 128),
		th.Right(255, 128),
	}, sink.Calls())
}

func TestRegistryReapsAndRediscovers(t *testing.T) {
	sink := &th.RecordingSink{}
	sources := []*hangingSource{newHangingSource(t), newHangingSource(t)}
	var opened int
	open := func(string) (profile.Source, string, error) {
		src := sources[opened]
		opened++
		return src, "HORIPAD S", nil
	}
	r := newTestRegistry(sink, paths("/dev/input/js0"), open)

	r.poll()
	require.Len(t, r.tracked, 1)
	before := r.tracked["/dev/input/js0"]

	sources[0].unplug()
	select {
	case <-before.done:
	case <-time.After(time.Second):
		t.Fatal("decoder did not signal completion after unplug")
	}
	assert.True(t, sources[0].Closed())

	// The next cycle reaps the dead unit and reattaches the same path.
	r.poll()
	require.Len(t, r.tracked, 1)
	assert.NotSame(t, before, r.tracked["/dev/input/js0"])
	assert.Equal(t, 2, opened)
}

func TestRegistryKeepsTrackedUnitsOnDiscoverError(t *testing.T) {
	src := newHangingSource(t)
	var cycle int
	discover := func(string) ([]string, error) {
		cycle++
		if cycle == 1 {
			return []string{"/dev/input/js0"}, nil
		}
		return nil, errors.New("device namespace unavailable")
	}
	open := func(string) (profile.Source, string, error) {
		return src, "HORIPAD S", nil
	}
	r := newTestRegistry(&th.RecordingSink{}, discover, open)

	r.poll()
	r.poll()

	assert.Len(t, r.tracked, 1)
}

func TestRegistryRunStopsOnContextCancel(t *testing.T) {
	r := newTestRegistry(&th.RecordingSink{}, paths(), func(string) (profile.Source, string, error) {
		return nil, "", os.ErrNotExist
	})
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("registry did not stop on context cancellation")
	}
}
