package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/sinklog/core"
)

func TestText_Basic(t *testing.T) {
	f := NewText(Config{})

	got := string(f.Format(time.Now(), core.ErrorLevel, "disk full"))
	if got != "[error] disk full\n" {
		t.Errorf("Expected '[error] disk full', got: %q", got)
	}
}

func TestText_Color(t *testing.T) {
	f := NewText(Config{Color: true})

	got := string(f.Format(time.Now(), core.InfoLevel, "ready"))
	want := "[\x1b[32minfo\x1b[39m] ready\n"
	if got != want {
		t.Errorf("Expected %q, got: %q", want, got)
	}
}

func TestText_Timestamp(t *testing.T) {
	f := NewText(Config{TimestampFormat: time.RFC3339})
	ts := time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC)

	got := string(f.Format(ts, core.WarnLevel, "slow"))
	if got != "2026-02-18T13:00:00Z [warn] slow\n" {
		t.Errorf("Unexpected line: %q", got)
	}
}

func TestText_FormatTo(t *testing.T) {
	var buf bytes.Buffer
	f := NewText(Config{})

	if err := f.FormatTo(&buf, time.Now(), core.DebugLevel, "x"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "[debug] x\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestJSON_Record(t *testing.T) {
	f := NewJSON()

	rec := core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "disk full",
		Scope:   "billing",
		Fields:  map[string]any{"homeyId": "abc123", "attempt": 2},
	}

	data, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		t.Error("Expected a newline-terminated object")
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v, data: %s", err, data)
	}

	checks := map[string]any{
		TimeKey:    "2026-02-18T13:00:00Z",
		MessageKey: "disk full",
		LevelKey:   "error",
		ScopeKey:   "billing",
		"homeyId":  "abc123",
		"attempt":  float64(2),
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("Expected %s=%v, got: %v", k, want, decoded[k])
		}
	}
}

func TestJSON_RootScopeOmitted(t *testing.T) {
	f := NewJSON()

	data, err := f.Format(core.NewRecord(core.InfoLevel, "hello", ""))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(string(data), `"scope"`) {
		t.Errorf("Expected no scope key for the root logger, got: %s", data)
	}
}

func TestJSON_LevelFieldCannotBeOverridden(t *testing.T) {
	f := NewJSON()

	rec := core.NewRecord(core.WarnLevel, "hello", "")
	rec.Fields = map[string]any{LevelKey: "info"}

	data, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Count(string(data), `"level"`) != 1 || !strings.Contains(string(data), `"level":"warn"`) {
		t.Errorf("Expected a single warn level, got: %s", data)
	}
}
