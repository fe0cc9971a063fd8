package transport

import (
	"context"
	"sync"

	"github.com/philipp01105/sinklog/core"
)

// Memory is a Transport that keeps records in memory
type Memory struct {
	mu      sync.Mutex
	records []core.Record
	err     error
	flushes int
	closed  bool
}

// NewMemory creates an empty in-memory transport
func NewMemory() *Memory {
	return &Memory{}
}

// MemoryFactory returns a Factory that always hands out m
func MemoryFactory(m *Memory) Factory {
	return func(string) (Transport, error) {
		return m, nil
	}
}

// Send stores the record, or returns the error set by FailWith
func (m *Memory) Send(rec core.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

// Flush counts the call
func (m *Memory) Flush(context.Context) error {
	m.mu.Lock()
	m.flushes++
	m.mu.Unlock()
	return nil
}

// Close marks the transport closed
func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

// FailWith makes every following Send return err. A nil err restores
// normal operation.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Records returns a copy of the stored records
func (m *Memory) Records() []core.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Flushes returns how many times Flush was called
func (m *Memory) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}
