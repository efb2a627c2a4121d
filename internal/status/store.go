package status

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot represents the latest battery data available to the UI.
type Snapshot struct {
	Battery             BatteryStatus
	HasSample           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsStale returns true when sampling has failed repeatedly.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store is the single-slot hand-off between the sampler goroutine and the UI.
// Writers replace the whole slot; readers get a copy, so a percentage from one
// sample is never paired with a charging flag from another.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored battery status. When err is non-nil the previous
// status is kept but the error is recorded for visibility.
func (s *Store) Update(battery BatteryStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	battery.Percentage = ClampPercentage(battery.Percentage)
	s.snapshot.Battery = battery
	s.snapshot.HasSample = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Battery returns the latest battery status, or the zero value when no sample
// has completed yet.
func (s *Store) Battery() BatteryStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Battery
}
