package staff

import "time"

// Staff statuses form a small open set; the roster stores whatever label the
// check-in devices or the admin UI last wrote.
const (
	StatusPresent    = "present"
	StatusAbsent     = "absent"
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusLate       = "late"
	StatusHalfDay    = "half-day"
)

type Staff struct {
	ID         string
	Name       string
	Department string
	BadgeID    string // hardware credential (NFC uid), may be empty
	Email      string
	Position   string
	Phone      string
	Status     string
	Removed    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
