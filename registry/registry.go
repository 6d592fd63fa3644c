// Package registry discovers joystick devices and keeps one decoder
// goroutine running per recognized controller. Controllers may attach
// and detach at any time; the registry notices both within one poll
// interval and never needs a restart.
package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/padmux/padmux/joystick"
	"github.com/padmux/padmux/pad"
	"github.com/padmux/padmux/profile"
)

// DefaultPollInterval bounds hot-plug detection latency. Low enough to
// feel instant when a pad is plugged in, high enough to keep the poll
// loop off the CPU.
const DefaultPollInterval = 100 * time.Millisecond

// Registry polls a device directory and attaches a decoder to every
// controller it recognizes. All fields are owned by the polling
// goroutine, so none of them need a lock.
type Registry struct {
	dir      string
	interval time.Duration
	sink     pad.Sink
	logger   *slog.Logger

	discover func(dir string) ([]string, error)
	open     func(path string) (profile.Source, string, error)

	tracked map[string]*unit
	counts  map[string]int
}

// unit is one running decoder. done closes when its goroutine returns,
// which is the only liveness signal the registry consults.
type unit struct {
	profile *profile.Profile
	done    chan struct{}
}

// New builds a registry polling dir at the default interval.
func New(dir string, sink pad.Sink, logger *slog.Logger) *Registry {
	return &Registry{
		dir:      dir,
		interval: DefaultPollInterval,
		sink:     sink,
		logger:   logger,
		discover: joystick.Discover,
		open:     openDevice,
		tracked:  make(map[string]*unit),
		counts:   make(map[string]int),
	}
}

func openDevice(path string) (profile.Source, string, error) {
	dev, err := joystick.Open(path)
	if err != nil {
		return nil, "", err
	}
	return dev, dev.Name(), nil
}

// Run polls until ctx is cancelled. Decoders are not force-stopped on
// shutdown; their exit path is their device going away.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		r.poll()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// poll reaps finished decoders, then scans for new devices. Reaping
// first lets a replugged controller reuse its old path within a single
// cycle.
func (r *Registry) poll() {
	for path, u := range r.tracked {
		select {
		case <-u.done:
			r.logger.Info("Controller removed", "path", path, "profile", u.profile.Name)
			delete(r.tracked, path)
		default:
		}
	}

	paths, err := r.discover(r.dir)
	if err != nil {
		r.logger.Warn("Failed to list joystick devices", "dir", r.dir, "error", err)
		return
	}
	for _, path := range paths {
		if _, ok := r.tracked[path]; !ok {
			r.attach(path)
		}
	}
}

// attach opens one candidate and, when its name matches a signature,
// hands it to a new decoder goroutine. Every failure here is non-fatal:
// the device is skipped this cycle and probed again on the next.
func (r *Registry) attach(path string) {
	src, name, err := r.open(path)
	if err != nil {
		r.logger.Debug("Failed to open joystick candidate", "path", path, "error", err)
		return
	}
	sig, ok := profile.Match(name)
	if !ok {
		r.logger.Debug("Unsupported controller", "path", path, "name", name)
		_ = src.Close()
		return
	}
	// The discovery count per signature decides which profile a device
	// gets; arcade sticks alternate left/right this way.
	prof := sig.Pick(r.counts[sig.Match])
	r.counts[sig.Match]++

	r.logger.Info("Found controller", "path", path, "name", name, "profile", prof.Name)
	u := &unit{profile: prof, done: make(chan struct{})}
	r.tracked[path] = u
	dec := profile.NewDecoder(src, prof, r.sink, r.logger.With("path", path))
	go func() {
		defer close(u.done)
		dec.Run()
	}()
}
