package logger

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/sinklog/config"
	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/transport"
)

func TestSlog_RoutesThroughSinks(t *testing.T) {
	var out syncBuffer
	l := NewBuilder().WithConsoleWriter(&out).Build()

	sl := l.Slog().With("app", "test").WithGroup("req")
	sl.Warn("slow request", "ms", 250, slog.Group("user", "id", 7))

	want := "[warn] slow request app=test req.ms=250 req.user.id=7\n"
	if !strings.Contains(out.String(), want) {
		t.Errorf("Expected %q, got: %q", want, out.String())
	}
}

func TestSlog_Enabled(t *testing.T) {
	l := NewBuilder().
		WithConsoleWriter(&syncBuffer{}).
		WithOverrides(map[string]any{config.KeyConsoleLevel: "warn"}).
		Build()

	h := l.Slog().Handler()
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected info to be disabled")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected error to be enabled")
	}
}

func TestSlog_ScopedLogger(t *testing.T) {
	mem := transport.NewMemory()
	l := newRemoteLogger(t, &syncBuffer{}, mem, nil)
	defer l.Close()

	l.Child("billing").Slog().Error("charge failed", "amount", 12)

	recs := mem.Records()
	if len(recs) != 1 || recs[0].Scope != "billing" || recs[0].Message != "charge failed amount=12" {
		t.Errorf("Unexpected remote records: %+v", recs)
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
