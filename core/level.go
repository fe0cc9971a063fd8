package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log record
type Level int8

const (
	// TraceLevel for very fine grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default threshold)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable errors. Logging at it does not exit.
	FatalLevel
	// OffLevel is a threshold only. It suppresses everything.
	OffLevel
)

// Color is an ANSI foreground color code used by the console renderer
type Color uint8

const (
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Grey    Color = 90
)

var levelNames = [...]string{
	TraceLevel: "trace",
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
	OffLevel:   "off",
}

var levelColors = [...]Color{
	TraceLevel: Blue,
	DebugLevel: Magenta,
	InfoLevel:  Green,
	WarnLevel:  Yellow,
	ErrorLevel: Red,
	FatalLevel: Red,
	OffLevel:   Grey,
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return "unknown"
}

// Color returns the display color of the level
func (l Level) Color() Color {
	if l.valid() {
		return levelColors[l]
	}
	return Grey
}

func (l Level) valid() bool {
	return l >= TraceLevel && l <= OffLevel
}

// Compare returns -1 if l is less severe than other, 1 if it is more
// severe and 0 if both are equal.
func (l Level) Compare(other Level) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	default:
		return 0
	}
}

// Enabled reports whether a record at level l passes the given threshold.
// Off never passes and an Off threshold accepts nothing.
func (l Level) Enabled(threshold Level) bool {
	if !l.valid() || l == OffLevel || threshold == OffLevel {
		return false
	}
	return l >= threshold
}

// Levels returns every level that can be logged at, in ascending severity.
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and "warning" is accepted for WarnLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "off":
		return OffLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown level %q", s)
}
