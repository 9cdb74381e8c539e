package stats

import "errors"

// Status is a derived attendance classification. It is computed on demand
// from an event and the current rules, never stored, so a rules change
// retroactively applies to history.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
	StatusNone    Status = "no_data"
)

// Presence statuses describe which halves of a record exist. They are a
// separate axis from Status: a record can be late and complete at once.
const (
	PresenceComplete   = "Complete"
	PresenceCheckedIn  = "Checked In"
	PresenceCheckedOut = "Checked Out"
	PresenceNoData     = "No Data"
)

// ErrMalformedTimestamp marks an event whose date or instants cannot be
// interpreted. Such events are excluded from status-based counts but kept in
// raw totals.
var ErrMalformedTimestamp = errors.New("malformed attendance timestamp")
