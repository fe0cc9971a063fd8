package handler

import (
	"context"

	"github.com/philipp01105/sinklog/core"
)

// Kind identifies the destination type of a sink
type Kind int

const (
	// KindConsole is a local console sink
	KindConsole Kind = iota
	// KindRemote is a remote ingestion sink
	KindRemote
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindConsole:
		return "console"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Sink defines the interface for log destinations
type Sink interface {
	// Offer emits msg at level if the sink accepts it and reports whether
	// it did.
	Offer(level core.Level, msg string) bool

	// Kind returns the destination type
	Kind() Kind

	// Enabled reports the sink's enable flag
	Enabled() bool

	// MinLevel returns the least severe level the sink emits
	MinLevel() core.Level

	// Flush delivers buffered lines
	Flush(ctx context.Context) error

	// Close closes the sink and releases resources
	Close() error
}

// ScopedSink is an optional interface for sinks that can tag lines with
// the name of the scoped logger that produced them.
type ScopedSink interface {
	OfferScoped(scope string, level core.Level, msg string) bool
}

// filter holds the configuration shared by all sinks
type filter struct {
	kind     Kind
	enabled  bool
	minLevel core.Level
	stats    *Stats
	metrics  *Metrics
}

// accept reports whether a line at level passes the sink configuration
func (f *filter) accept(level core.Level) bool {
	if !f.enabled {
		return false
	}
	if !level.Enabled(f.minLevel) {
		f.stats.IncrementFiltered()
		f.metrics.observeFiltered(f.kind, level)
		return false
	}
	return true
}

func (f *filter) emitted(level core.Level) {
	f.stats.IncrementEmitted()
	f.metrics.observeEmitted(f.kind, level)
}

func (f *filter) failed(level core.Level) {
	f.stats.IncrementFailed()
	f.metrics.observeFailed(f.kind, level)
}

// Kind returns the destination type
func (f *filter) Kind() Kind {
	return f.kind
}

// Enabled reports the sink's enable flag
func (f *filter) Enabled() bool {
	return f.enabled
}

// MinLevel returns the sink's threshold
func (f *filter) MinLevel() core.Level {
	return f.minLevel
}

// Stats returns a snapshot of the sink statistics
func (f *filter) Stats() Snapshot {
	return f.stats.GetSnapshot()
}
