package logger

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/handler"
)

// captureFlushTimeout bounds the flush performed by CaptureError
const captureFlushTimeout = 5 * time.Second

// sinkEntry caches the optional ScopedSink interface of a sink
type sinkEntry struct {
	sink   handler.Sink
	scoped handler.ScopedSink
}

func newSinkEntry(s handler.Sink) sinkEntry {
	scoped, _ := s.(handler.ScopedSink)
	return sinkEntry{sink: s, scoped: scoped}
}

// sinkList is never modified once published
type sinkList []sinkEntry

// accepts reports whether at least one sink would emit level
func (sl sinkList) accepts(level core.Level) bool {
	for _, e := range sl {
		if e.sink.Enabled() && level.Enabled(e.sink.MinLevel()) {
			return true
		}
	}
	return false
}

// shared is the state common to a root logger and all its scopes
type shared struct {
	sinks    atomic.Pointer[sinkList]
	root     *Logger
	registry *registry
	// remote is false when no token was configured; no remote sink can
	// ever be added then.
	remote bool
	ready  chan struct{}

	mu     sync.Mutex // serializes the remote swap with Close
	closed bool
}

// publish appends s to the sink list unless the logger is closed
func (sh *shared) publish(s handler.Sink) bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.closed {
		return false
	}
	cur := *sh.sinks.Load()
	next := make(sinkList, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, newSinkEntry(s))
	sh.sinks.Store(&next)
	return true
}

// Logger is a leveled logger writing to a shared list of sinks
type Logger struct {
	scope  string
	shared *shared
}

// Trace logs at trace level
func (l *Logger) Trace(args ...any) {
	l.log(core.TraceLevel, args)
}

// Debug logs at debug level
func (l *Logger) Debug(args ...any) {
	l.log(core.DebugLevel, args)
}

// Info logs at info level
func (l *Logger) Info(args ...any) {
	l.log(core.InfoLevel, args)
}

// Log is an alias for Info
func (l *Logger) Log(args ...any) {
	l.log(core.InfoLevel, args)
}

// Warn logs at warn level
func (l *Logger) Warn(args ...any) {
	l.log(core.WarnLevel, args)
}

// Error logs at error level
func (l *Logger) Error(args ...any) {
	l.log(core.ErrorLevel, args)
}

// Fatal logs at fatal level. It does not exit; terminating the process is
// up to the host.
func (l *Logger) Fatal(args ...any) {
	l.log(core.FatalLevel, args)
}

// CaptureError logs err at fatal level and flushes the sinks so the record
// has left the process before the host terminates it. A nil err is ignored.
func (l *Logger) CaptureError(err error) {
	if err == nil {
		return
	}
	l.log(core.FatalLevel, []any{"uncaught error:", err})

	ctx, cancel := context.WithTimeout(context.Background(), captureFlushTimeout)
	defer cancel()
	_ = l.Flush(ctx)
}

// log formats args once and offers the line to every sink in order
func (l *Logger) log(level core.Level, args []any) {
	sinks := *l.shared.sinks.Load()

	// Level check optimization - skip formatting nobody would emit
	if !sinks.accepts(level) {
		return
	}

	l.emit(sinks, level, core.Format(args...))
}

func (l *Logger) emit(sinks sinkList, level core.Level, msg string) {
	for _, e := range sinks {
		l.offer(e, level, msg)
	}
}

// offer isolates the caller from a misbehaving sink
func (l *Logger) offer(e sinkEntry, level core.Level, msg string) {
	defer func() {
		_ = recover()
	}()

	if l.scope != "" && e.scoped != nil {
		e.scoped.OfferScoped(l.scope, level, msg)
		return
	}
	e.sink.Offer(level, msg)
}

// Scope returns the scope name, empty for the root logger
func (l *Logger) Scope() string {
	return l.scope
}

// Sinks returns the sinks currently installed, in offer order
func (l *Logger) Sinks() []handler.Sink {
	sinks := *l.shared.sinks.Load()
	out := make([]handler.Sink, len(sinks))
	for i, e := range sinks {
		out[i] = e.sink
	}
	return out
}

// Ready is closed once background setup of the remote sink has finished,
// whether or not a remote sink was installed.
func (l *Logger) Ready() <-chan struct{} {
	return l.shared.ready
}

// Flush flushes every sink
func (l *Logger) Flush(ctx context.Context) error {
	var err error
	for _, s := range l.Sinks() {
		err = multierr.Append(err, s.Flush(ctx))
	}
	return err
}

// Close closes every sink. A remote sink whose setup finishes after Close
// is closed immediately instead of being installed. Scoped loggers share
// the root's sinks, so closing any of them closes all.
func (l *Logger) Close() error {
	sh := l.shared
	sh.mu.Lock()
	if sh.closed {
		sh.mu.Unlock()
		return nil
	}
	sh.closed = true
	sh.mu.Unlock()

	var err error
	for _, s := range l.Sinks() {
		err = multierr.Append(err, s.Close())
	}
	return err
}
