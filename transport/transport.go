package transport

import (
	"context"
	"errors"

	"github.com/philipp01105/sinklog/core"
)

var (
	// ErrClosed is returned by Send after Close
	ErrClosed = errors.New("transport closed")
	// ErrQueueFull is returned by Send when a record was dropped
	ErrQueueFull = errors.New("transport queue full")
)

// Transport ships records to a remote destination
type Transport interface {
	// Send hands a record to the transport. Delivery may happen later.
	Send(rec core.Record) error

	// Flush delivers everything accepted so far or fails when ctx ends
	Flush(ctx context.Context) error

	// Close flushes pending records and releases resources
	Close() error
}

// Factory builds a transport from an ingestion token
type Factory func(token string) (Transport, error)
