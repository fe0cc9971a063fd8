package handler

import (
	"context"
	"errors"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/identity"
	"github.com/philipp01105/sinklog/transport"
)

// RemoteConfig holds configuration for remote sink
type RemoteConfig struct {
	// Transport delivers the records (required)
	Transport transport.Transport
	// Enricher is applied to every record before delivery (optional)
	Enricher identity.Enricher
	// Enabled turns the sink on
	Enabled bool
	// MinLevel is the sink threshold
	MinLevel core.Level
	// Metrics receives the sink counters (optional)
	Metrics *Metrics
}

// RemoteSink hands enriched records to a transport
type RemoteSink struct {
	*filter
	transport transport.Transport
	enrich    identity.Enricher
}

// NewRemoteSink creates a new remote sink
func NewRemoteSink(cfg RemoteConfig) (*RemoteSink, error) {
	if cfg.Transport == nil {
		return nil, errors.New("remote sink: missing transport")
	}

	return &RemoteSink{
		filter: &filter{
			kind:     KindRemote,
			enabled:  cfg.Enabled,
			minLevel: cfg.MinLevel,
			stats:    NewStats(),
			metrics:  cfg.Metrics,
		},
		transport: cfg.Transport,
		enrich:    cfg.Enricher,
	}, nil
}

// Offer sends an untagged record if the sink accepts level
func (h *RemoteSink) Offer(level core.Level, msg string) bool {
	return h.OfferScoped("", level, msg)
}

// OfferScoped sends a record tagged with scope if the sink accepts level.
// Transport errors are counted and otherwise ignored.
func (h *RemoteSink) OfferScoped(scope string, level core.Level, msg string) bool {
	if !h.accept(level) {
		return false
	}

	rec := core.NewRecord(level, msg, scope)
	if h.enrich != nil {
		rec = h.enrich(rec)
	}

	if err := h.transport.Send(rec); err != nil {
		h.failed(level)
	} else {
		h.emitted(level)
	}
	return true
}

// Flush flushes the transport
func (h *RemoteSink) Flush(ctx context.Context) error {
	return h.transport.Flush(ctx)
}

// Close closes the transport
func (h *RemoteSink) Close() error {
	return h.transport.Close()
}
