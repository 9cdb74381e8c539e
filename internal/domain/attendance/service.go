package attendance

import "context"

// AttendanceService defines business logic for marking and listing events.
type AttendanceService interface {
	// Mark records a check-in or check-out for a staff member today
	Mark(ctx context.Context, req MarkAttendanceRequest) (EventResponse, error)

	// List returns events for a day or range with derived statuses, paginated
	List(ctx context.Context, filter ListEventsFilter) (ListEventsResponse, error)

	// Summary aggregates one calendar month; month is YYYY-MM, empty means
	// the current month
	Summary(ctx context.Context, month string) (MonthlySummaryResponse, error)
}
