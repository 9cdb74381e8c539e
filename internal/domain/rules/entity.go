package rules

import (
	"fmt"
	"strings"
)

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Rules is the singleton attendance rules document. Work hours and the late
// threshold drive classification; weekend days and minimum hours are carried
// as configuration but not applied to status derivation.
type Rules struct {
	WorkStart            ClockTime
	WorkEnd              ClockTime
	LateThresholdMinutes int
	MinimumHours         float64
	WeekendDays          []int // weekday indices 0-6, Sunday=0
}

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func formatClock(t ClockTime) string {
	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}
	displayHour := t.Hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, t.Minute, period)
}

// FormatWorkHours renders the configured work hours, e.g. "9:00 AM - 5:00 PM".
func (r Rules) FormatWorkHours() string {
	return formatClock(r.WorkStart) + " - " + formatClock(r.WorkEnd)
}

// FormatWeekendDays renders the configured weekend days, e.g. "Friday, Saturday".
func (r Rules) FormatWeekendDays() string {
	if len(r.WeekendDays) == 0 {
		return "None"
	}
	names := make([]string, 0, len(r.WeekendDays))
	for _, d := range r.WeekendDays {
		if d >= 0 && d < len(dayNames) {
			names = append(names, dayNames[d])
		}
	}
	return strings.Join(names, ", ")
}

// IsWeekend reports whether the given weekday index is a configured weekend day.
func (r Rules) IsWeekend(weekday int) bool {
	for _, d := range r.WeekendDays {
		if d == weekday {
			return true
		}
	}
	return false
}
