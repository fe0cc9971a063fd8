package logger

import (
	"context"
	"fmt"
	"io"

	"github.com/philipp01105/sinklog/config"
	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/handler"
	"github.com/philipp01105/sinklog/identity"
	"github.com/philipp01105/sinklog/transport"
)

// Diagnostics written to the console sink during setup
const (
	msgNoToken          = "No log ingestion token found, remote logging is disabled"
	msgIdentityFailed   = "Failed to resolve the log identity, remote logging is disabled:"
	msgTransportFailed  = "Failed to create the log transport, remote logging is disabled:"
	msgRemoteSinkFailed = "Failed to create the remote sink, remote logging is disabled:"
)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	config          config.Config
	overrides       map[string]any
	token           string
	consoleWriter   io.Writer
	color           handler.ColorMode
	timestampFormat string
	identity        identity.Provider
	transport       transport.Factory
	metrics         *handler.Metrics
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		config:    config.Defaults(),
		identity:  identity.Host("", ""),
		transport: transport.HTTPFactory(""),
	}
}

// WithConfig replaces the base configuration
func (b *Builder) WithConfig(cfg config.Config) *Builder {
	b.config = cfg
	return b
}

// WithOverrides sets the override map merged over the base configuration
func (b *Builder) WithOverrides(overrides map[string]any) *Builder {
	b.overrides = overrides
	return b
}

// WithToken sets the ingestion token. Without a token no remote sink is
// created.
func (b *Builder) WithToken(token string) *Builder {
	b.token = token
	return b
}

// WithEnvironment applies the token, endpoint and overrides of env
func (b *Builder) WithEnvironment(env config.Environment) *Builder {
	b.token = env.Token
	b.overrides = env.Overrides
	b.transport = transport.HTTPFactory(env.Endpoint)
	return b
}

// WithConsoleWriter sets the console destination (default: os.Stdout)
func (b *Builder) WithConsoleWriter(w io.Writer) *Builder {
	b.consoleWriter = w
	return b
}

// WithColor sets the console color mode
func (b *Builder) WithColor(mode handler.ColorMode) *Builder {
	b.color = mode
	return b
}

// WithTimestampFormat prefixes console lines with a timestamp
func (b *Builder) WithTimestampFormat(layout string) *Builder {
	b.timestampFormat = layout
	return b
}

// WithIdentityProvider sets the provider of the remote identity
func (b *Builder) WithIdentityProvider(p identity.Provider) *Builder {
	b.identity = p
	return b
}

// WithTransportFactory sets how the remote transport is created
func (b *Builder) WithTransportFactory(f transport.Factory) *Builder {
	b.transport = f
	return b
}

// WithMetrics makes all sinks report to m
func (b *Builder) WithMetrics(m *handler.Metrics) *Builder {
	b.metrics = m
	return b
}

// Build creates the root Logger. The console sink is installed before
// Build returns; the remote sink, if a token is configured, is installed
// by a background goroutine. Watch Ready to know when that has finished.
func (b *Builder) Build() *Logger {
	cfg := config.Merge(b.config, b.overrides)

	sh := &shared{
		registry: newRegistry(),
		remote:   b.token != "",
		ready:    make(chan struct{}),
	}
	root := &Logger{shared: sh}
	sh.root = root

	console := handler.NewConsoleSink(handler.ConsoleConfig{
		Writer:          b.consoleWriter,
		Enabled:         cfg.ConsoleEnabled,
		MinLevel:        cfg.ConsoleLevel,
		Color:           b.color,
		TimestampFormat: b.timestampFormat,
		Metrics:         b.metrics,
	})
	sinks := sinkList{newSinkEntry(console)}
	sh.sinks.Store(&sinks)

	if !sh.remote {
		console.Diagnose(msgNoToken)
		close(sh.ready)
		return root
	}

	go b.setupRemote(root, console, cfg)
	return root
}

// setupRemote resolves the identity, creates the transport and installs
// the remote sink. Failures are reported once on the console, whatever
// its threshold.
func (b *Builder) setupRemote(root *Logger, console *handler.ConsoleSink, cfg config.Config) {
	defer close(root.shared.ready)
	defer func() {
		if r := recover(); r != nil {
			console.Diagnose(core.Format(msgRemoteSinkFailed, fmt.Sprint(r)))
		}
	}()

	id, err := b.identity.Identity(context.Background())
	if err != nil {
		console.Diagnose(core.Format(msgIdentityFailed, err))
		return
	}

	tr, err := b.transport(b.token)
	if err != nil {
		console.Diagnose(core.Format(msgTransportFailed, err))
		return
	}

	remote, err := handler.NewRemoteSink(handler.RemoteConfig{
		Transport: tr,
		Enricher:  identity.NewEnricher(id),
		Enabled:   cfg.PublishEnabled,
		MinLevel:  cfg.PublishLevel,
		Metrics:   b.metrics,
	})
	if err != nil {
		console.Diagnose(core.Format(msgRemoteSinkFailed, err))
		return
	}

	if !root.shared.publish(remote) {
		_ = remote.Close()
	}
}
