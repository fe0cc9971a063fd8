package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/sinklog/core"
)

// Slog returns a *slog.Logger whose records are routed through l's sinks.
// Attributes are rendered as key=value pairs after the message.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(&slogHandler{logger: l})
}

// slogHandler is an adapter that implements slog.Handler on top of a Logger
type slogHandler struct {
	logger *Logger
	attrs  string
	group  string
}

// Enabled reports whether any sink emits records at the given level.
func (s *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.shared.sinks.Load().accepts(slogLevelToCore(level))
}

// Handle renders the record and offers it to the logger's sinks.
func (s *slogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	sinks := *s.logger.shared.sinks.Load()
	s.logger.emit(sinks, slogLevelToCore(record.Level), b.String())
	return nil
}

// WithAttrs returns a new handler with additional attributes.
func (s *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &slogHandler{
		logger: s.logger,
		attrs:  b.String(),
		group:  s.group,
	}
}

// WithGroup returns a new handler with the given group name.
func (s *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &slogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr writes " key=value", prefixing the key with the group and
// flattening nested groups.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
