package handler

import (
	"sync/atomic"

	"github.com/philipp01105/duolog/core"
)

// Stats tracks per-level write counts. The zero value is ready to use.
type Stats struct {
	written [core.FatalLevel + 1]atomic.Uint64
	failed  [core.FatalLevel + 1]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter for a level
func (s *Stats) IncrementWritten(level core.Level) {
	if level.Valid() {
		s.written[level].Add(1)
	}
}

// IncrementFailed atomically increments the failed counter for a level
func (s *Stats) IncrementFailed(level core.Level) {
	if level.Valid() {
		s.failed[level].Add(1)
	}
}

// Record counts a write for level as written or failed depending on err
func (s *Stats) Record(level core.Level, err error) {
	if err != nil {
		s.IncrementFailed(level)
		return
	}
	s.IncrementWritten(level)
}

// GetWritten returns the written count for a level
func (s *Stats) GetWritten(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.written[level].Load()
}

// GetFailed returns the failed count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.failed[level].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written      map[core.Level]uint64
	Failed       map[core.Level]uint64
	WrittenTotal uint64
	FailedTotal  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written: make(map[core.Level]uint64, len(s.written)),
		Failed:  make(map[core.Level]uint64, len(s.failed)),
	}
	for _, l := range core.Levels() {
		w, f := s.GetWritten(l), s.GetFailed(l)
		snap.Written[l] = w
		snap.Failed[l] = f
		snap.WrittenTotal += w
		snap.FailedTotal += f
	}
	return snap
}
