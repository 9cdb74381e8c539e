package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/acss-labs/acss-backend-go/internal/cache"
	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/dashboard"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/acss-labs/acss-backend-go/internal/stats"
)

type DashboardServiceImpl struct {
	snapshot *cache.Snapshot
}

func NewDashboardService(snapshot *cache.Snapshot) dashboard.DashboardService {
	return &DashboardServiceImpl{snapshot: snapshot}
}

// GetDashboard implements dashboard.DashboardService. All reads come from the
// in-memory snapshot; nothing here touches the database.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, date string, trendDays int) (*dashboard.DashboardResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if trendDays < 1 {
		trendDays = 7
	}

	roster := s.snapshot.ActiveStaff()
	r := s.snapshot.Rules()
	dayEvents := s.snapshot.EventsInRange(date, date)

	derived := stats.Compute(dayEvents, roster, r)

	resp := &dashboard.DashboardResponse{
		Summary: dashboard.SummaryResponse{
			TotalStaff:     len(s.snapshot.Staff()),
			ActiveStaff:    derived.ActiveStaff,
			PresentCount:   derived.PresentCount,
			LateCount:      derived.LateCount,
			AbsentCount:    derived.AbsentCount,
			AttendanceRate: derived.PresentRate + derived.LateRate,
			LateRate:       derived.LateRate,
			AbsenceRate:    derived.AbsentRate,
			Date:           date,
		},
		Trend:          []dashboard.TrendPointResponse{},
		RecentActivity: []dashboard.RecentActivityItem{},
		Rules: dashboard.DashboardRulesResponse{
			WorkHours:            r.FormatWorkHours(),
			LateThresholdMinutes: r.LateThresholdMinutes,
			WeekendDays:          r.FormatWeekendDays(),
		},
	}

	// Trend window ends on the requested date.
	end, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		end = time.Now()
	}

	weekStart := end.AddDate(0, 0, -((int(end.Weekday()) + 6) % 7))
	resp.Week = s.timeframe(weekStart.Format("2006-01-02"), date, roster, r)
	monthStart := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	resp.Month = s.timeframe(monthStart.Format("2006-01-02"), date, roster, r)

	start := end.AddDate(0, 0, -(trendDays - 1)).Format("2006-01-02")
	trendEvents := s.snapshot.EventsInRange(start, date)
	for _, p := range stats.TrendSeries(trendEvents, r) {
		resp.Trend = append(resp.Trend, dashboard.TrendPointResponse{
			Date:       p.Date,
			PresentPct: p.PresentPct,
			LatePct:    p.LatePct,
			AbsentPct:  p.AbsentPct,
		})
	}

	resp.Departments = departmentBreakdown(dayEvents, roster, r)
	resp.RecentActivity = recentActivity(dayEvents, r, 5)

	return resp, nil
}

func (s *DashboardServiceImpl) timeframe(start, end string, roster []staff.Staff, r rules.Rules) dashboard.TimeframeStats {
	derived := stats.Compute(s.snapshot.EventsInRange(start, end), roster, r)
	return dashboard.TimeframeStats{
		StartDate:      start,
		EndDate:        end,
		PresentCount:   derived.PresentCount,
		LateCount:      derived.LateCount,
		AbsentCount:    derived.AbsentCount,
		AttendanceRate: derived.PresentRate + derived.LateRate,
	}
}

func departmentBreakdown(dayEvents []attendance.Event, roster []staff.Staff, r rules.Rules) []dashboard.DepartmentBreakdown {
	byDept := make(map[string]*dashboard.DepartmentBreakdown)
	for _, member := range roster {
		d, ok := byDept[member.Department]
		if !ok {
			d = &dashboard.DepartmentBreakdown{Department: member.Department}
			byDept[member.Department] = d
		}
		d.Total++
	}

	// Distinct staff per department per status, same counting rule as the
	// summary cards.
	seen := make(map[string]stats.Status)
	for _, e := range dayEvents {
		status, err := stats.Classify(e, r)
		if err != nil || status == stats.StatusNone {
			continue
		}
		// Late trumps present for the same member.
		if prev, ok := seen[e.StaffID]; ok && prev == stats.StatusLate {
			continue
		}
		seen[e.StaffID] = status
	}

	rosterDept := make(map[string]string, len(roster))
	for _, member := range roster {
		rosterDept[member.ID] = member.Department
	}
	for staffID, status := range seen {
		dept, ok := rosterDept[staffID]
		if !ok {
			continue
		}
		d := byDept[dept]
		switch status {
		case stats.StatusLate:
			d.Late++
		default:
			d.Present++
		}
	}

	names := make([]string, 0, len(byDept))
	for name := range byDept {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]dashboard.DepartmentBreakdown, 0, len(names))
	for _, name := range names {
		d := byDept[name]
		d.Absent = d.Total - d.Present - d.Late
		if d.Absent < 0 {
			d.Absent = 0
		}
		out = append(out, *d)
	}
	return out
}

func recentActivity(dayEvents []attendance.Event, r rules.Rules, limit int) []dashboard.RecentActivityItem {
	sorted := make([]attendance.Event, len(dayEvents))
	copy(sorted, dayEvents)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]dashboard.RecentActivityItem, 0, len(sorted))
	for _, e := range sorted {
		status, err := stats.Classify(e, r)
		if err != nil {
			status = stats.StatusNone
		}
		item := dashboard.RecentActivityItem{
			StaffName:  e.StaffName,
			Department: e.Department,
			Status:     string(status),
			CheckIn:    clockString(e.CheckIn),
			CheckOut:   clockString(e.CheckOut),
		}
		if e.CheckOut != nil {
			item.Device = e.CheckOutDevice
		} else {
			item.Device = e.CheckInDevice
		}
		out = append(out, item)
	}
	return out
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
