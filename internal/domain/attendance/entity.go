package attendance

import "time"

const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

// Event is one attendance record, partitioned by calendar day. A (StaffID,
// Date) pair normally maps to a single event carrying one check-in and one
// check-out, but duplicates are tolerated: attendance for a member on a day is
// the union of all matching events.
type Event struct {
	ID             string
	StaffID        string
	Date           string // YYYY-MM-DD, the partition key
	StaffName      string // denormalized from the roster at write time
	Department     string
	BadgeID        string
	CheckIn        *time.Time
	CheckInDevice  *string
	CheckOut       *time.Time
	CheckOutDevice *string
	CreatedAt      time.Time
}

// Day is the per-date counter document kept alongside the records.
type Day struct {
	Date  string
	Count int
}
