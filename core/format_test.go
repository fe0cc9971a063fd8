package core

import (
	"errors"
	"strings"
	"testing"
)

type panicky struct{}

func (panicky) String() string { panic("boom") }

type boomErr struct{}

func (*boomErr) Error() string { panic("boom") }

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"empty", nil, ""},
		{"placeholder", []any{"user %s logged in", "alice"}, "user alice logged in"},
		{"concatenation", []any{"a", "b", "c"}, "a b c"},
		{"mixed types", []any{"count", 3, true}, "count 3 true"},
		{"leftover args", []any{"%s=%d", "retries", 3, "extra", 1.5}, "retries=3 extra 1.5"},
		{"escaped percent", []any{"100%% of %s", "disk"}, "100% of disk"},
		{"lone string keeps percent", []any{"100% done"}, "100% done"},
		{"non string first", []any{42, "apples"}, "42 apples"},
		{"error value", []any{"failed:", errors.New("disk full")}, "failed: disk full"},
		{"star width", []any{"[%*d]", 4, 7}, "[   7]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.args...); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_MissingArgumentsKeepVerbs(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"second verb unmatched", []any{"%s and %s", "one"}, "one and %s"},
		{"width kept", []any{"%d items, %5s", 3}, "3 items, %5s"},
		{"star needs two", []any{"%s [%*d] %s", "a", 4}, "a [%*d] %s"},
		{"trailing percent", []any{"%s at 100%", "load"}, "load at 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.args...); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_NeverPanics(t *testing.T) {
	got := Format("value:", panicky{})
	if !strings.HasPrefix(got, "value:") {
		t.Errorf("Expected the message prefix to survive, got: %s", got)
	}

	var err *boomErr
	got = Format("failed", err)
	if got != "failed <*core.boomErr>" {
		t.Errorf("Expected type fallback, got: %s", got)
	}
}

func TestRecord_WithFieldsCopies(t *testing.T) {
	r := NewRecord(InfoLevel, "msg", "billing")
	r.Fields = map[string]any{"a": 1}

	enriched := r.WithFields(map[string]any{"b": 2})

	if len(r.Fields) != 1 {
		t.Errorf("Expected original fields untouched, got %v", r.Fields)
	}
	if enriched.Fields["a"] != 1 || enriched.Fields["b"] != 2 {
		t.Errorf("Expected merged fields, got %v", enriched.Fields)
	}
	if enriched.Scope != "billing" || enriched.Message != "msg" {
		t.Errorf("Expected scope and message preserved, got %+v", enriched)
	}
}
