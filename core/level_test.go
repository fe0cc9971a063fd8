package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "trace"},
		{DebugLevel, "debug"},
		{InfoLevel, "info"},
		{WarnLevel, "warn"},
		{ErrorLevel, "error"},
		{FatalLevel, "fatal"},
		{OffLevel, "off"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Color(t *testing.T) {
	if InfoLevel.Color() != Green {
		t.Errorf("Expected info to be green, got %d", InfoLevel.Color())
	}
	if FatalLevel.Color() != Red || ErrorLevel.Color() != Red {
		t.Error("Expected error and fatal to be red")
	}
	if Level(-3).Color() != Grey {
		t.Errorf("Expected unknown level to be grey, got %d", Level(-3).Color())
	}
}

func TestLevel_Compare(t *testing.T) {
	if TraceLevel.Compare(FatalLevel) != -1 {
		t.Error("Expected trace to sort before fatal")
	}
	if ErrorLevel.Compare(WarnLevel) != 1 {
		t.Error("Expected error to sort after warn")
	}
	if InfoLevel.Compare(InfoLevel) != 0 {
		t.Error("Expected info to equal itself")
	}
}

func TestLevel_EnabledThreshold(t *testing.T) {
	levels := Levels()
	for i, threshold := range levels {
		for j, l := range levels {
			want := j >= i
			if got := l.Enabled(threshold); got != want {
				t.Errorf("%s.Enabled(%s) = %v, want %v", l, threshold, got, want)
			}
		}
	}
}

func TestLevel_OffAcceptsNothing(t *testing.T) {
	for _, l := range Levels() {
		if l.Enabled(OffLevel) {
			t.Errorf("Expected %s to be rejected by an off threshold", l)
		}
	}
	for _, threshold := range Levels() {
		if OffLevel.Enabled(threshold) {
			t.Errorf("Expected off to never pass threshold %s", threshold)
		}
	}
}

func TestLevels_ExcludesOff(t *testing.T) {
	levels := Levels()
	if len(levels) != 6 {
		t.Fatalf("Expected 6 loggable levels, got %d", len(levels))
	}
	for _, l := range levels {
		if l == OffLevel {
			t.Error("Levels() must not contain off")
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", TraceLevel},
		{"DEBUG", DebugLevel},
		{" info ", InfoLevel},
		{"warning", WarnLevel},
		{"Warn", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"off", OffLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("Expected an error for an unknown level name")
	}
}
