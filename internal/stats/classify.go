package stats

import (
	"time"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
)

// Classify derives the attendance status of a single event from the current
// rules. The late cutoff is the event's own calendar day at the configured
// work start plus the late threshold, in local time; a check-in at the cutoff
// exactly is still present. Events with a check-out but no check-in count as
// present (the member was demonstrably there). Events with neither are
// StatusNone.
func Classify(e attendance.Event, r rules.Rules) (Status, error) {
	if e.CheckIn == nil {
		if e.CheckOut != nil {
			return StatusPresent, nil
		}
		return StatusNone, nil
	}

	day, err := time.ParseInLocation("2006-01-02", e.Date, time.Local)
	if err != nil {
		return StatusNone, ErrMalformedTimestamp
	}

	expectedStart := time.Date(
		day.Year(), day.Month(), day.Day(),
		r.WorkStart.Hour, r.WorkStart.Minute, 0, 0,
		time.Local,
	)
	cutoff := expectedStart.Add(time.Duration(r.LateThresholdMinutes) * time.Minute)

	if e.CheckIn.After(cutoff) {
		return StatusLate, nil
	}
	return StatusPresent, nil
}

// PresenceStatus reports which halves of the record exist. This is the status
// column of exported reports, distinct from the late/present classification.
func PresenceStatus(e attendance.Event) string {
	switch {
	case e.CheckIn != nil && e.CheckOut != nil:
		return PresenceComplete
	case e.CheckIn != nil:
		return PresenceCheckedIn
	case e.CheckOut != nil:
		return PresenceCheckedOut
	default:
		return PresenceNoData
	}
}

// LateMinutes returns how many whole minutes past the scheduled start the
// check-in happened, zero when on time or when the event has no check-in.
func LateMinutes(e attendance.Event, r rules.Rules) int {
	if e.CheckIn == nil {
		return 0
	}
	day, err := time.ParseInLocation("2006-01-02", e.Date, time.Local)
	if err != nil {
		return 0
	}
	expectedStart := time.Date(
		day.Year(), day.Month(), day.Day(),
		r.WorkStart.Hour, r.WorkStart.Minute, 0, 0,
		time.Local,
	)
	diff := e.CheckIn.Sub(expectedStart)
	if diff <= 0 {
		return 0
	}
	return int(diff.Minutes())
}
