package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/acss-labs/acss-backend-go/internal/cache"
	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/acss-labs/acss-backend-go/internal/pkg/database"
	"github.com/acss-labs/acss-backend-go/internal/pkg/pagination"
	"github.com/acss-labs/acss-backend-go/internal/pkg/validator"
	"github.com/acss-labs/acss-backend-go/internal/repository/postgresql"
	"github.com/acss-labs/acss-backend-go/internal/stats"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.EventRepository
	staffRepo staff.StaffRepository
	rulesRepo rules.RulesRepository
	snapshot  *cache.Snapshot
}

func NewAttendanceService(db *database.DB, eventRepository attendance.EventRepository, staffRepository staff.StaffRepository, rulesRepository rules.RulesRepository, snapshot *cache.Snapshot) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:              db,
		EventRepository: eventRepository,
		staffRepo:       staffRepository,
		rulesRepo:       rulesRepository,
		snapshot:        snapshot,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	var event attendance.Event

	switch req.Action {
	case attendance.ActionCheckIn:
		checkedIn, err := s.EventRepository.HasCheckedIn(ctx, member.ID, today)
		if err != nil {
			return attendance.EventResponse{}, fmt.Errorf("failed to check existing check-in: %w", err)
		}
		if checkedIn {
			return attendance.EventResponse{}, attendance.ErrAlreadyCheckedIn
		}

		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)
			event, err = s.EventRepository.Create(txCtx, attendance.Event{
				StaffID:       member.ID,
				Date:          today,
				StaffName:     member.Name,
				Department:    member.Department,
				BadgeID:       member.BadgeID,
				CheckIn:       &now,
				CheckInDevice: &req.DeviceID,
			})
			return err
		})
		if err != nil {
			return attendance.EventResponse{}, fmt.Errorf("failed to record check-in: %w", err)
		}

		member.Status = staff.StatusCheckedIn

	case attendance.ActionCheckOut:
		event, err = s.EventRepository.GetOpenEvent(ctx, member.ID, today)
		if err != nil {
			if errors.Is(err, attendance.ErrEventNotFound) {
				return attendance.EventResponse{}, attendance.ErrNotCheckedIn
			}
			return attendance.EventResponse{}, fmt.Errorf("failed to find open event: %w", err)
		}

		event.CheckOut = &now
		event.CheckOutDevice = &req.DeviceID
		if err := s.EventRepository.Update(ctx, event); err != nil {
			return attendance.EventResponse{}, fmt.Errorf("failed to record check-out: %w", err)
		}

		member.Status = staff.StatusCheckedOut
	}

	// Roster status mirrors the last action; failures here do not undo the
	// recorded event.
	_ = s.staffRepo.Update(ctx, member)

	if s.snapshot != nil {
		_ = s.snapshot.Load(ctx)
	}

	r, err := s.rulesRepo.Get(ctx)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to load rules: %w", err)
	}
	status, err := stats.Classify(event, r)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	return attendance.MapEventToResponse(event, string(status)), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListEventsFilter) (attendance.ListEventsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListEventsResponse{}, err
	}

	start, end := filter.StartDate, filter.EndDate
	if filter.Date != "" {
		start, end = filter.Date, filter.Date
	}
	if start == "" && end == "" {
		today := time.Now().Format("2006-01-02")
		start, end = today, today
	}
	if start == "" {
		start = end
	}
	if end == "" {
		end = start
	}

	events, err := s.EventRepository.ListRange(ctx, start, end, filter.StaffID)
	if err != nil {
		return attendance.ListEventsResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	r, err := s.rulesRepo.Get(ctx)
	if err != nil {
		return attendance.ListEventsResponse{}, fmt.Errorf("failed to load rules: %w", err)
	}

	days, err := s.EventRepository.ListDays(ctx)
	if err != nil {
		return attendance.ListEventsResponse{}, fmt.Errorf("failed to list days: %w", err)
	}

	pager := pagination.New(len(events), filter.Limit)
	pager.GoTo(filter.Page)
	lo, hi := pager.Bounds(pager.Current())

	resp := attendance.ListEventsResponse{
		TotalCount: len(events),
		Page:       pager.Current(),
		Limit:      pager.Size(),
		TotalPages: pager.TotalPages(),
		DayCount:   len(days),
		Events:     []attendance.EventResponse{},
	}

	for _, e := range events[lo:hi] {
		status, err := stats.Classify(e, r)
		if err != nil {
			// Malformed rows surface as no_data rather than failing the page.
			status = stats.StatusNone
		}
		resp.Events = append(resp.Events, attendance.MapEventToResponse(e, string(status)))
	}

	return resp, nil
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, month string) (attendance.MonthlySummaryResponse, error) {
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	first, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}
	start := first.Format("2006-01-02")
	end := first.AddDate(0, 1, -1).Format("2006-01-02")

	events, err := s.EventRepository.ListRange(ctx, start, end, "")
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to list events: %w", err)
	}
	r, err := s.rulesRepo.Get(ctx)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to load rules: %w", err)
	}
	roster, err := s.staffRepo.List(ctx)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}

	byDate := make(map[string][]attendance.Event)
	var dates []string
	for _, e := range events {
		if _, ok := byDate[e.Date]; !ok {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	sort.Strings(dates)

	resp := attendance.MonthlySummaryResponse{
		Month:        month,
		DaysWithData: len(dates),
		Days:         []attendance.DayStatusCounts{},
	}
	for _, d := range dates {
		counts := stats.CountByStatus(byDate[d], r)
		resp.Days = append(resp.Days, attendance.DayStatusCounts{
			Date:    d,
			Present: counts[stats.StatusPresent],
			Late:    counts[stats.StatusLate],
			Total:   len(byDate[d]),
		})
	}

	derived := stats.Compute(events, roster, r)
	resp.PresentCount = derived.PresentCount
	resp.LateCount = derived.LateCount
	resp.AbsentCount = derived.AbsentCount

	return resp, nil
}
