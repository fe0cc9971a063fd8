package handler

import "sync/atomic"

// Stats tracks sink statistics
type Stats struct {
	emitted  uint64
	filtered uint64
	failed   uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEmitted atomically increments the emitted counter
func (s *Stats) IncrementEmitted() {
	atomic.AddUint64(&s.emitted, 1)
}

// IncrementFiltered atomically increments the counter of lines below threshold
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.filtered, 1)
}

// IncrementFailed atomically increments the counter of failed writes
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.failed, 1)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Emitted  uint64
	Filtered uint64
	Failed   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Emitted:  atomic.LoadUint64(&s.emitted),
		Filtered: atomic.LoadUint64(&s.filtered),
		Failed:   atomic.LoadUint64(&s.failed),
	}
}
