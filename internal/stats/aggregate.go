package stats

import (
	"sort"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
)

// DerivedStats is the ephemeral statistics bundle recomputed on every query.
// Counts are distinct staff members per day summed over the range, not raw
// event counts; rates are normalized by activeStaff x totalDays.
type DerivedStats struct {
	TotalDays    int
	TotalRecords int
	ActiveStaff  int

	PresentCount int
	LateCount    int
	HalfDayCount int
	AbsentCount  int
	Skipped      int // malformed events excluded from status counts

	PresentRate float64
	LateRate    float64
	HalfDayRate float64
	AbsentRate  float64
}

// rate returns num/denom as a percentage, 0 when the denominator is 0. Never
// NaN, always within [0,100].
func rate(num, denom int) float64 {
	if denom <= 0 || num <= 0 {
		return 0
	}
	r := float64(num) / float64(denom) * 100
	if r > 100 {
		return 100
	}
	return r
}

// Compute aggregates a pre-filtered event list against the roster. Malformed
// events are skipped from status counts but retained in TotalRecords; the
// absent count is clamped at zero even when upstream data is inconsistent.
func Compute(events []attendance.Event, roster []staff.Staff, r rules.Rules) DerivedStats {
	// distinct staff per (date,status)
	perDate := make(map[string]map[Status]map[string]struct{})
	skipped := 0

	for _, e := range events {
		status, err := Classify(e, r)
		if err != nil {
			skipped++
			continue
		}
		if status == StatusNone {
			continue
		}
		byStatus, ok := perDate[e.Date]
		if !ok {
			byStatus = make(map[Status]map[string]struct{})
			perDate[e.Date] = byStatus
		}
		ids, ok := byStatus[status]
		if !ok {
			ids = make(map[string]struct{})
			byStatus[status] = ids
		}
		ids[e.StaffID] = struct{}{}
	}

	// Distinct dates include those contributed only by malformed events.
	dates := make(map[string]struct{})
	for _, e := range events {
		dates[e.Date] = struct{}{}
	}

	s := DerivedStats{
		TotalDays:    len(dates),
		TotalRecords: len(events),
		ActiveStaff:  len(roster),
		Skipped:      skipped,
	}

	for _, byStatus := range perDate {
		s.PresentCount += len(byStatus[StatusPresent])
		s.LateCount += len(byStatus[StatusLate])
		s.HalfDayCount += len(byStatus[StatusHalfDay])
	}

	denom := s.ActiveStaff * s.TotalDays
	s.AbsentCount = denom - s.PresentCount - s.LateCount
	if s.AbsentCount < 0 {
		s.AbsentCount = 0
	}

	s.PresentRate = rate(s.PresentCount, denom)
	s.LateRate = rate(s.LateCount, denom)
	s.HalfDayRate = rate(s.HalfDayCount, denom)
	s.AbsentRate = rate(s.AbsentCount, denom)

	return s
}

// PairedEntry joins one roster member with their events in range, so the
// roster and the event list reconcile into a single view keyed by staff id.
type PairedEntry struct {
	Staff  staff.Staff
	Events []attendance.Event
	Status string // presence status of the day: No Data when no events
}

// PairWithRoster synthesizes one entry per roster member, including members
// with zero events in range (marked No Data).
func PairWithRoster(events []attendance.Event, roster []staff.Staff) []PairedEntry {
	byStaff := make(map[string][]attendance.Event, len(roster))
	for _, e := range events {
		byStaff[e.StaffID] = append(byStaff[e.StaffID], e)
	}

	entries := make([]PairedEntry, 0, len(roster))
	for _, member := range roster {
		entry := PairedEntry{
			Staff:  member,
			Events: byStaff[member.ID],
			Status: PresenceNoData,
		}
		for _, e := range entry.Events {
			// The most complete event wins the presence label.
			switch s := PresenceStatus(e); s {
			case PresenceComplete:
				entry.Status = s
			case PresenceCheckedIn, PresenceCheckedOut:
				if entry.Status != PresenceComplete {
					entry.Status = s
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// TrendPoint is one chart sample: the share of a single date's own events per
// status. The denominator is deliberately that date's event count, not the
// roster-wide denominator used by Compute.
type TrendPoint struct {
	Date       string
	PresentPct float64
	LatePct    float64
	AbsentPct  float64
}

// TrendSeries builds per-date percentage points, sorted by date ascending.
func TrendSeries(events []attendance.Event, r rules.Rules) []TrendPoint {
	type tally struct {
		total, present, late, absent int
	}
	byDate := make(map[string]*tally)
	for _, e := range events {
		t, ok := byDate[e.Date]
		if !ok {
			t = &tally{}
			byDate[e.Date] = t
		}
		t.total++
		status, err := Classify(e, r)
		if err != nil {
			continue
		}
		switch status {
		case StatusPresent:
			t.present++
		case StatusLate:
			t.late++
		case StatusAbsent:
			t.absent++
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]TrendPoint, 0, len(dates))
	for _, d := range dates {
		t := byDate[d]
		points = append(points, TrendPoint{
			Date:       d,
			PresentPct: rate(t.present, t.total),
			LatePct:    rate(t.late, t.total),
			AbsentPct:  rate(t.absent, t.total),
		})
	}
	return points
}

// CountByStatus tallies events per classification for a flat slice, raw event
// counts rather than distinct staff. Used for single-day breakdowns.
func CountByStatus(events []attendance.Event, r rules.Rules) map[Status]int {
	counts := make(map[Status]int)
	for _, e := range events {
		status, err := Classify(e, r)
		if err != nil || status == StatusNone {
			continue
		}
		counts[status]++
	}
	return counts
}
