package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrBadgeIDExists = errors.New("badge id already registered")
)
