package discord

import (
	"go.uber.org/zap"

	"github.com/stagekit/discord-frame/errors"
)

// ClientID identifies the calling application to Discord. It is assigned in
// the Discord developer portal and never changes for the life of a client.
type ClientID int64

type config struct {
	binding Binding
	flags   CreateFlags
	libPath string
}

// Option configures client construction.
type Option func(*config)

// WithBinding replaces the native binding. Mainly used by tests.
func WithBinding(b Binding) Option {
	return func(c *config) { c.binding = b }
}

// WithCreateFlags sets the SDK create flags.
func WithCreateFlags(f CreateFlags) Option {
	return func(c *config) { c.flags = f }
}

// WithLibraryPath loads the SDK shared library from an explicit path instead
// of searching the default names.
func WithLibraryPath(path string) Option {
	return func(c *config) { c.libPath = path }
}

// Client is a live connection to the Discord app on the local machine.
//
// A Client is NOT safe for concurrent use and must stay on the thread that
// created it. There is no reconnection: if New fails, the failure is final
// for that call.
type Client struct {
	id     ClientID
	core   Core
	closed bool
}

// New performs the single construction attempt against the Discord app.
// On failure the returned error describes the cause; the caller decides
// whether that is fatal.
func New(id ClientID, opts ...Option) (*Client, error) {
	cfg := config{flags: CreateDefault}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := cfg.binding
	if b == nil {
		b = &nativeBinding{path: cfg.libPath}
	}

	core, err := b.Create(id, cfg.flags)
	if err != nil {
		return nil, err
	}

	return &Client{id: id, core: core}, nil
}

// ID returns the client identifier the core was created with.
func (c *Client) ID() ClientID {
	return c.id
}

// RunCallbacks processes the SDK's pending events exactly once. Errors from
// the native core are returned unmodified.
func (c *Client) RunCallbacks() error {
	if c.closed {
		return errors.Closed(errors.OpPoll, "client")
	}
	return c.core.RunCallbacks()
}

// SetLogHook routes the SDK's internal log output to fn.
func (c *Client) SetLogHook(minLevel LogLevel, fn LogHook) {
	if c.closed {
		return
	}
	c.core.SetLogHook(minLevel, fn)
}

// Close destroys the native core. Safe to call more than once. Process exit
// without Close is also fine; the SDK defines no teardown beyond that.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.core.Destroy()
	return nil
}

// ZapHook returns a LogHook that forwards SDK log lines to l at the
// matching zap level.
func ZapHook(l *zap.Logger) LogHook {
	return func(level LogLevel, message string) {
		switch level {
		case LogError:
			l.Error(message, zap.String("source", "discord-sdk"))
		case LogWarn:
			l.Warn(message, zap.String("source", "discord-sdk"))
		case LogInfo:
			l.Info(message, zap.String("source", "discord-sdk"))
		default:
			l.Debug(message, zap.String("source", "discord-sdk"))
		}
	}
}
