package identity

import (
	"context"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/philipp01105/sinklog/core"
)

func TestStatic(t *testing.T) {
	want := Identity{DeviceID: "abc123", AppID: "com.example.app"}
	got, err := Static(want).Identity(context.Background())
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Identity() mismatch (-want +got):\n%s", diff)
	}
}

func TestHost(t *testing.T) {
	p := Host("com.example.app", "1.2.3")

	first, err := p.Identity(context.Background())
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if first.DeviceID == "" {
		t.Error("Expected a device id")
	}
	if first.Platform != runtime.GOOS {
		t.Errorf("Expected platform %s, got: %s", runtime.GOOS, first.Platform)
	}
	if first.AppID != "com.example.app" || first.AppVersion != "1.2.3" {
		t.Errorf("Expected app metadata to be passed through, got: %+v", first)
	}

	second, _ := Host("other", "0.0.1").Identity(context.Background())
	if second.DeviceID != first.DeviceID {
		t.Errorf("Expected the device id to be stable per process, got %q and %q", first.DeviceID, second.DeviceID)
	}
}

func TestEnricher_AddsIdentity(t *testing.T) {
	enrich := NewEnricher(Identity{DeviceID: "abc123", AppVersion: "2.0.0"})

	rec := core.NewRecord(core.ErrorLevel, "disk full", "")
	out := enrich(rec)

	want := map[string]any{
		KeyDeviceID:   "abc123",
		KeyAppVersion: "2.0.0",
	}
	if diff := cmp.Diff(want, out.Fields); diff != "" {
		t.Errorf("enriched fields mismatch (-want +got):\n%s", diff)
	}
	if out.Message != "disk full" {
		t.Errorf("Expected message to be preserved, got: %s", out.Message)
	}
}

func TestEnricher_DoesNotMutateInput(t *testing.T) {
	enrich := NewEnricher(Identity{DeviceID: "abc123"})

	rec := core.NewRecord(core.InfoLevel, "hello", "")
	rec.Fields = map[string]any{"request": "r-1"}

	out := enrich(rec)

	if _, ok := rec.Fields[KeyDeviceID]; ok {
		t.Error("Expected input record to stay untouched")
	}
	if out.Fields["request"] != "r-1" || out.Fields[KeyDeviceID] != "abc123" {
		t.Errorf("Expected record and identity fields, got: %v", out.Fields)
	}
}
