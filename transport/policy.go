package transport

import (
	"sync/atomic"

	"github.com/philipp01105/sinklog/core"
)

// OverflowPolicy defines how to handle a full queue
type OverflowPolicy int

const (
	// DropNewest drops the newest record when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest queued record when the queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout).
	// No level uses it by default.
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies.
// Errors evict older records instead of being dropped; no level blocks.
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.TraceLevel: DropNewest,
		core.DebugLevel: DropNewest,
		core.InfoLevel:  DropNewest,
		core.WarnLevel:  DropNewest,
		core.ErrorLevel: DropOldest,
		core.FatalLevel: DropOldest,
	}
}

// Stats tracks transport statistics
type Stats struct {
	dropped [core.OffLevel]uint64
	blocked uint64
	sent    uint64
	failed  uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if level < core.TraceLevel || level >= core.OffLevel {
		return
	}
	atomic.AddUint64(&s.dropped[level], 1)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.blocked, 1)
}

// AddSent atomically adds n delivered records
func (s *Stats) AddSent(n int) {
	atomic.AddUint64(&s.sent, uint64(n))
}

// AddFailed atomically adds n records whose delivery failed
func (s *Stats) AddFailed(n int) {
	atomic.AddUint64(&s.failed, uint64(n))
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	if level < core.TraceLevel || level >= core.OffLevel {
		return 0
	}
	return atomic.LoadUint64(&s.dropped[level])
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for _, l := range core.Levels() {
		total += s.GetDropped(l)
	}
	return total
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Dropped map[core.Level]uint64
	Blocked uint64
	Sent    uint64
	Failed  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, len(core.Levels()))
	for _, l := range core.Levels() {
		dropped[l] = s.GetDropped(l)
	}
	return Snapshot{
		Dropped: dropped,
		Blocked: atomic.LoadUint64(&s.blocked),
		Sent:    atomic.LoadUint64(&s.sent),
		Failed:  atomic.LoadUint64(&s.failed),
	}
}
