package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrUnknownPreset    = errors.New("unknown date range preset")
	ErrEmptyReport      = errors.New("no attendance data in range")
)
