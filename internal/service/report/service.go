package report

import (
	"context"
	"sort"
	"time"

	"github.com/acss-labs/acss-backend-go/internal/cache"
	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/report"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/acss-labs/acss-backend-go/internal/pkg/pagination"
	"github.com/acss-labs/acss-backend-go/internal/stats"
)

type ReportServiceImpl struct {
	snapshot *cache.Snapshot
	now      func() time.Time
}

func NewReportService(snapshot *cache.Snapshot) report.ReportService {
	return &ReportServiceImpl{snapshot: snapshot, now: time.Now}
}

// Generate implements report.ReportService. Pagination runs over the distinct
// dates of the range so a page always shows whole days.
func (s *ReportServiceImpl) Generate(ctx context.Context, req *report.ReportRequest) (*report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, end, err := req.Resolve(s.now())
	if err != nil {
		return nil, err
	}

	roster := s.snapshot.ActiveStaff()
	r := s.snapshot.Rules()
	events := s.filterEvents(start, end, req.StaffID)

	dates := distinctDates(events)
	pageDates := pagination.Slice(dates, req.Page, req.Limit)

	resp := &report.ReportResponse{
		StartDate:  start,
		EndDate:    end,
		TotalCount: len(dates),
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: pagination.TotalPages(len(dates), req.Limit),
		Days:       []report.DaySummary{},
		Entries:    []report.ReportEntry{},
	}

	byDate := groupByDate(events)
	for _, d := range dates {
		counts := stats.CountByStatus(byDate[d], r)
		resp.Days = append(resp.Days, report.DaySummary{
			Date:    d,
			Present: counts[stats.StatusPresent],
			Late:    counts[stats.StatusLate],
			Absent:  counts[stats.StatusAbsent],
			Total:   len(byDate[d]),
		})
	}

	for _, d := range pageDates {
		resp.Entries = append(resp.Entries, buildDayEntries(d, byDate[d], roster, r)...)
	}

	// Range-level summary plus the preceding range of equal length.
	derived := stats.Compute(events, roster, r)
	resp.Summary = report.ReportSummary{
		PresentCount:   derived.PresentCount,
		LateCount:      derived.LateCount,
		AbsentCount:    derived.AbsentCount,
		AttendanceRate: derived.PresentRate + derived.LateRate,
		LateRate:       derived.LateRate,
		AbsenceRate:    derived.AbsentRate,
	}
	if prevStart, prevEnd, ok := previousRange(start, end); ok {
		prevEvents := s.filterEvents(prevStart, prevEnd, req.StaffID)
		prev := stats.Compute(prevEvents, roster, r)
		resp.Summary.PrevPresentCount = prev.PresentCount
		resp.Summary.PrevLateCount = prev.LateCount
		resp.Summary.PrevAbsentCount = prev.AbsentCount
		resp.Summary.PrevAttendanceRate = prev.PresentRate + prev.LateRate
	}

	resp.Distribution = []report.StatusSlice{
		{Status: string(stats.StatusPresent), Count: derived.PresentCount},
		{Status: string(stats.StatusLate), Count: derived.LateCount},
		{Status: string(stats.StatusAbsent), Count: derived.AbsentCount},
	}
	resp.Comparison = staffComparison(events, roster, r)

	return resp, nil
}

// staffComparison builds one chart group per roster member over the whole
// range: raw check-in/check-out counts and distinct attended days.
func staffComparison(events []attendance.Event, roster []staff.Staff, r rules.Rules) []report.StaffComparison {
	type tally struct {
		checkIns, checkOuts int
		days                map[string]struct{}
	}
	byStaff := make(map[string]*tally)
	for _, e := range events {
		t, ok := byStaff[e.StaffID]
		if !ok {
			t = &tally{days: make(map[string]struct{})}
			byStaff[e.StaffID] = t
		}
		if e.CheckIn != nil {
			t.checkIns++
		}
		if e.CheckOut != nil {
			t.checkOuts++
		}
		if status, err := stats.Classify(e, r); err == nil &&
			(status == stats.StatusPresent || status == stats.StatusLate) {
			t.days[e.Date] = struct{}{}
		}
	}

	out := make([]report.StaffComparison, 0, len(roster))
	for _, member := range roster {
		row := report.StaffComparison{
			StaffID:    member.ID,
			StaffName:  member.Name,
			Department: member.Department,
		}
		if t, ok := byStaff[member.ID]; ok {
			row.CheckIns = t.checkIns
			row.CheckOuts = t.checkOuts
			row.DaysPresent = len(t.days)
		}
		out = append(out, row)
	}
	return out
}

func (s *ReportServiceImpl) filterEvents(start, end, staffID string) []attendance.Event {
	if staffID != "" && staffID != "all" {
		return s.snapshot.StaffEvents(staffID, start, end)
	}
	return s.snapshot.EventsInRange(start, end)
}

// buildDayEntries joins one day's events with the roster for the on-screen
// list. Members without an event that day appear as No Data rows.
func buildDayEntries(date string, dayEvents []attendance.Event, roster []staff.Staff, r rules.Rules) []report.ReportEntry {
	entries := stats.PairWithRoster(dayEvents, roster)

	out := make([]report.ReportEntry, 0, len(entries))
	for _, entry := range entries {
		row := report.ReportEntry{
			Date:       date,
			StaffID:    entry.Staff.ID,
			StaffName:  entry.Staff.Name,
			Department: entry.Staff.Department,
			Status:     entry.Status,
		}
		if e, ok := bestEvent(entry.Events); ok {
			row.CheckIn = clockString(e.CheckIn)
			row.CheckOut = clockString(e.CheckOut)
			row.CheckInDevice = e.CheckInDevice
			row.CheckOutDevice = e.CheckOutDevice
			row.LateMinutes = stats.LateMinutes(e, r)
		}
		out = append(out, row)
	}
	return out
}

// bestEvent prefers the most complete record when a member has duplicates on
// one day.
func bestEvent(events []attendance.Event) (attendance.Event, bool) {
	best := -1
	score := func(e attendance.Event) int {
		n := 0
		if e.CheckIn != nil {
			n += 2
		}
		if e.CheckOut != nil {
			n++
		}
		return n
	}
	for i, e := range events {
		if best < 0 || score(e) > score(events[best]) {
			best = i
		}
	}
	if best < 0 {
		return attendance.Event{}, false
	}
	return events[best], true
}

// distinctDates returns range dates newest first, matching the on-screen
// report ordering.
func distinctDates(events []attendance.Event) []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, e := range events {
		if _, ok := seen[e.Date]; !ok {
			seen[e.Date] = struct{}{}
			dates = append(dates, e.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

func groupByDate(events []attendance.Event) map[string][]attendance.Event {
	byDate := make(map[string][]attendance.Event)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	return byDate
}

// previousRange returns the range of equal length immediately before
// [start, end].
func previousRange(start, end string) (string, string, bool) {
	s, err := time.ParseInLocation("2006-01-02", start, time.Local)
	if err != nil {
		return "", "", false
	}
	e, err := time.ParseInLocation("2006-01-02", end, time.Local)
	if err != nil {
		return "", "", false
	}
	days := int(e.Sub(s).Hours()/24) + 1
	prevEnd := s.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))
	return prevStart.Format("2006-01-02"), prevEnd.Format("2006-01-02"), true
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}
