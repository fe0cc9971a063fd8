package handler

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/formatter"
)

// ColorMode controls coloring of the level name
type ColorMode int

const (
	// ColorAuto colors only when the writer is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways always colors
	ColorAlways
	// ColorNever never colors
	ColorNever
)

// ConsoleConfig holds configuration for console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Enabled turns the sink on
	Enabled bool
	// MinLevel is the sink threshold
	MinLevel core.Level
	// Color selects level coloring (default: ColorAuto)
	Color ColorMode
	// TimestampFormat prefixes lines with a timestamp when set
	TimestampFormat string
	// Metrics receives the sink counters (optional)
	Metrics *Metrics
}

// ConsoleSink writes log lines to stdout or any io.Writer
type ConsoleSink struct {
	*filter
	writer    io.Writer
	formatter *formatter.Text
	mu        sync.Mutex
}

// NewConsoleSink creates a new console sink
func NewConsoleSink(cfg ConsoleConfig) *ConsoleSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	return &ConsoleSink{
		filter: &filter{
			kind:     KindConsole,
			enabled:  cfg.Enabled,
			minLevel: cfg.MinLevel,
			stats:    NewStats(),
			metrics:  cfg.Metrics,
		},
		writer: cfg.Writer,
		formatter: formatter.NewText(formatter.Config{
			Color:           useColor(cfg.Color, cfg.Writer),
			TimestampFormat: cfg.TimestampFormat,
		}),
	}
}

// useColor resolves a ColorMode against the writer
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Offer writes the line if the sink accepts level
func (h *ConsoleSink) Offer(level core.Level, msg string) bool {
	if !h.accept(level) {
		return false
	}

	h.mu.Lock()
	err := h.formatter.FormatTo(h.writer, time.Now(), level, msg)
	h.mu.Unlock()

	if err != nil {
		h.failed(level)
	} else {
		h.emitted(level)
	}
	return true
}

// Diagnose writes a warn-level line regardless of the enable flag and the
// threshold. It is meant for the library's own setup diagnostics.
func (h *ConsoleSink) Diagnose(msg string) {
	h.mu.Lock()
	err := h.formatter.FormatTo(h.writer, time.Now(), core.WarnLevel, msg)
	h.mu.Unlock()

	if err != nil {
		h.failed(core.WarnLevel)
	} else {
		h.emitted(core.WarnLevel)
	}
}

// Flush is a no-op, console lines are written synchronously
func (h *ConsoleSink) Flush(context.Context) error {
	return nil
}

// Close is a no-op, the writer is owned by the caller
func (h *ConsoleSink) Close() error {
	return nil
}
