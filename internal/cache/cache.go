package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
)

// Snapshot is an in-memory copy of the tables the dashboard and report
// screens aggregate over. Reads take the read lock; Load swaps the whole
// snapshot under the write lock so readers never see a half-loaded state.
type Snapshot struct {
	staffRepo staff.StaffRepository
	eventRepo attendance.EventRepository
	rulesRepo rules.RulesRepository

	mu       sync.RWMutex
	staff    []staff.Staff
	events   []attendance.Event
	rules    rules.Rules
	loadedAt time.Time
}

func NewSnapshot(staffRepo staff.StaffRepository, eventRepo attendance.EventRepository, rulesRepo rules.RulesRepository) *Snapshot {
	return &Snapshot{
		staffRepo: staffRepo,
		eventRepo: eventRepo,
		rulesRepo: rulesRepo,
	}
}

// Load refreshes the snapshot from the backing repositories.
func (s *Snapshot) Load(ctx context.Context) error {
	staffList, err := s.staffRepo.List(ctx)
	if err != nil {
		return err
	}
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	r, err := s.rulesRepo.Get(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.staff = staffList
	s.events = events
	s.rules = r
	s.loadedAt = time.Now()
	s.mu.Unlock()

	slog.Debug("Snapshot loaded",
		"staff", len(staffList),
		"events", len(events),
	)
	return nil
}

// LoadedAt reports when the snapshot was last refreshed.
func (s *Snapshot) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Staff returns the cached roster including removed members.
func (s *Snapshot) Staff() []staff.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]staff.Staff, len(s.staff))
	copy(out, s.staff)
	return out
}

// ActiveStaff returns roster members that are active and not removed.
func (s *Snapshot) ActiveStaff() []staff.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []staff.Staff
	for _, m := range s.staff {
		if !m.Removed && m.Status != staff.StatusInactive {
			out = append(out, m)
		}
	}
	return out
}

// Rules returns the cached attendance rules.
func (s *Snapshot) Rules() rules.Rules {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules
}

// Events returns every cached attendance event.
func (s *Snapshot) Events() []attendance.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]attendance.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventsInRange returns events whose date falls within [start, end],
// both in YYYY-MM-DD form. Lexicographic comparison is enough for the
// date encoding used across the event tables.
func (s *Snapshot) EventsInRange(start, end string) []attendance.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []attendance.Event
	for _, e := range s.events {
		if e.Date >= start && e.Date <= end {
			out = append(out, e)
		}
	}
	return out
}

// StaffEvents returns events for one staff member, optionally bounded by
// a date range. Empty bounds mean unbounded on that side.
func (s *Snapshot) StaffEvents(staffID, start, end string) []attendance.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []attendance.Event
	for _, e := range s.events {
		if e.StaffID != staffID {
			continue
		}
		if start != "" && e.Date < start {
			continue
		}
		if end != "" && e.Date > end {
			continue
		}
		out = append(out, e)
	}
	return out
}
