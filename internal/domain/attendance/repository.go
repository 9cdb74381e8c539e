package attendance

import "context"

// EventRepository defines data access for attendance events and the per-day
// counter documents (the original "attendance/<date>/records" layout).
type EventRepository interface {
	// Create inserts a new event and bumps the day counter
	Create(ctx context.Context, e Event) (Event, error)

	// Update writes check-out fields of an existing event
	Update(ctx context.Context, e Event) error

	// GetOpenEvent returns the member's event for the given date that has a
	// check-in but no check-out yet
	GetOpenEvent(ctx context.Context, staffID string, date string) (Event, error)

	// HasCheckedIn reports whether the member already checked in on the date
	HasCheckedIn(ctx context.Context, staffID string, date string) (bool, error)

	// ListAll returns every event, ordered by date then creation time
	ListAll(ctx context.Context) ([]Event, error)

	// ListRange returns events between start and end dates inclusive,
	// optionally restricted to one member
	ListRange(ctx context.Context, start, end string, staffID string) ([]Event, error)

	// ListDays returns the per-day counters ordered by date descending
	ListDays(ctx context.Context) ([]Day, error)

	// HasHistory reports whether any event exists for the member
	HasHistory(ctx context.Context, staffID string) (bool, error)
}
