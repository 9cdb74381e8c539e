package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("staff member has already checked in today")
	ErrNotCheckedIn     = errors.New("staff member has not checked in yet")
	ErrEventNotFound    = errors.New("attendance record not found")
)
