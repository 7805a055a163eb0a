package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/daywall/internal/anchor"
	"github.com/five82/daywall/internal/timeline"
)

// Snapshot represents the latest scheduler state available to the UI.
type Snapshot struct {
	Pack      string
	Longitude float64
	Latitude  float64

	Phase    string
	Anchors  anchor.Set
	Timeline timeline.Timeline
	HasDay   bool

	Active      timeline.Entry
	HasActive   bool
	LastApplied time.Time
	LastTick    time.Time
	Recomputes  int
	LastError   error
}

// ActiveIndex returns the timeline position of the active entry, or -1.
func (s Snapshot) ActiveIndex() int {
	if !s.HasActive {
		return -1
	}
	for i, e := range s.Timeline {
		if e == s.Active {
			return i
		}
	}
	return -1
}

// DayProgress returns how far now is between Midnight and NextDayMidnight,
// clamped to [0, 1].
func (s Snapshot) DayProgress(now time.Time) float64 {
	if !s.HasDay {
		return 0
	}
	start, end := s.Anchors.At(anchor.Midnight), s.Anchors.At(anchor.NextDayMidnight)
	if end <= start {
		return 0
	}
	p := float64(now.Unix()-start) / float64(end-start)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Store coordinates concurrent updates to the snapshot. The scheduler is the
// only writer.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetSource records the pack and location being scheduled.
func (s *Store) SetSource(pack string, lon, lat float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Pack = pack
	s.snapshot.Longitude = lon
	s.snapshot.Latitude = lat
}

// SetPhase records the scheduler phase and the time it was observed.
func (s *Store) SetPhase(phase string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Phase = phase
	s.snapshot.LastTick = at
}

// SetDay replaces the anchors and timeline. The active entry is cleared
// because it belonged to the previous timeline.
func (s *Store) SetDay(anchors anchor.Set, tl timeline.Timeline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.HasDay {
		s.snapshot.Recomputes++
	}
	s.snapshot.Anchors = anchors
	s.snapshot.Timeline = tl.Clone()
	s.snapshot.HasDay = true
	s.snapshot.Active = timeline.Entry{}
	s.snapshot.HasActive = false
}

// SetActive records the entry that was applied.
func (s *Store) SetActive(entry timeline.Entry, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Active = entry
	s.snapshot.HasActive = true
	s.snapshot.LastApplied = at
	s.snapshot.LastError = nil
}

// SetError records the most recent failure; previous data is kept.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Timeline = s.snapshot.Timeline.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
