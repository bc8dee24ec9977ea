package app

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Plugin is a unit of startup configuration. Build runs exactly once, on
// the loop thread, before any system.
type Plugin interface {
	Build(*App)
}

// Option configures an App.
type Option func(*App)

// WithFrameRate sets the target frames per second for Run. Default is 60.
func WithFrameRate(fps int) Option {
	return func(a *App) {
		if fps > 0 {
			a.frameRate = fps
		}
	}
}

// WithLogger sets the App's logger. Default is the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.logger = l }
}

// App collects plugins, resources and systems, then drives the frame loop.
type App struct {
	resources *registry
	nonSend   *registry
	schedule  schedule
	plugins   []Plugin
	logger    *zap.Logger

	frameRate int
	tick      uint64
	built     bool
	started   bool
}

// New creates an empty App.
func New(opts ...Option) *App {
	a := &App{
		resources: newRegistry(),
		nonSend:   newRegistry(),
		frameRate: 60,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = Logger()
	}
	return a
}

// Logger returns the App's logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// AddPlugins registers plugins. Their Build runs during setup, in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	a.plugins = append(a.plugins, plugins...)
	return a
}

// AddSystems registers per-frame systems in the given order. No ordering is
// guaranteed beyond registration order.
func (a *App) AddSystems(systems ...System) *App {
	a.schedule.addUpdate(systems...)
	return a
}

// AddStartupSystems registers systems that run once, before the first frame.
func (a *App) AddStartupSystems(systems ...System) *App {
	a.schedule.addStartup(systems...)
	return a
}

// InsertResource registers a shared resource, replacing any previous value
// of the same type.
func (a *App) InsertResource(v any) *App {
	a.resources.insert(v)
	return a
}

// InsertNonSend registers a loop-thread-confined resource, replacing any
// previous value of the same type.
func (a *App) InsertNonSend(v any) *App {
	a.nonSend.insert(v)
	return a
}

// build runs plugin Builds once. Plugins cannot fail the build; anything
// that can go wrong inside a plugin is its own to log and degrade on.
func (a *App) build() {
	if a.built {
		return
	}
	a.built = true
	for _, p := range a.plugins {
		p.Build(a)
	}
}

// setup runs plugin Builds and startup systems once, before the first frame.
func (a *App) setup() error {
	a.build()

	if a.started {
		return nil
	}
	a.started = true
	return a.schedule.runStartup(&Frame{app: a})
}

// Step advances exactly one frame: on first use it runs plugin Builds and
// startup systems, then runs every per-frame system once. Useful for tests
// and externally driven loops; Run drives the same machinery on a ticker.
func (a *App) Step() error {
	return a.step(time.Second / time.Duration(a.frameRate))
}

func (a *App) step(delta time.Duration) error {
	if err := a.setup(); err != nil {
		return err
	}

	a.tick++
	return a.schedule.runUpdate(&Frame{app: a, tick: a.tick, delta: delta})
}

// Run drives the frame loop at the configured rate until ctx is cancelled
// (returns nil) or a system fails (returns its error). The loop goroutine
// is pinned to its OS thread so non-send resources stay on one thread for
// the life of the process.
func (a *App) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := a.setup(); err != nil {
		return err
	}

	interval := time.Second / time.Duration(a.frameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.logger.Debug("frame loop starting", zap.Int("fps", a.frameRate))

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("frame loop stopped", zap.Uint64("ticks", a.tick))
			return nil
		case now := <-ticker.C:
			if err := a.step(now.Sub(last)); err != nil {
				return err
			}
			last = now
		}
	}
}
