package rules

import (
	"encoding/json"
	"fmt"

	"github.com/acss-labs/acss-backend-go/internal/pkg/validator"
)

// Updatable field paths. Nested fields use the original document's dotted
// notation so the UI can patch a single value at a time.
const (
	FieldWorkStartHour   = "work_hours.start_hour"
	FieldWorkStartMinute = "work_hours.start_minute"
	FieldWorkEndHour     = "work_hours.end_hour"
	FieldWorkEndMinute   = "work_hours.end_minute"
	FieldLateThreshold   = "thresholds.late_minutes"
	FieldMinimumHours    = "thresholds.minimum_hours"
	FieldWeekendDays     = "weekend_days"
)

type RulesResponse struct {
	WorkStart            ClockTime `json:"work_start"`
	WorkEnd              ClockTime `json:"work_end"`
	LateThresholdMinutes int       `json:"late_threshold_minutes"`
	MinimumHours         float64   `json:"minimum_hours"`
	WeekendDays          []int     `json:"weekend_days"`
	WorkHoursDisplay     string    `json:"work_hours_display"`
	WeekendDaysDisplay   string    `json:"weekend_days_display"`
}

func MapRulesToResponse(r Rules) RulesResponse {
	weekend := r.WeekendDays
	if weekend == nil {
		weekend = []int{}
	}
	return RulesResponse{
		WorkStart:            r.WorkStart,
		WorkEnd:              r.WorkEnd,
		LateThresholdMinutes: r.LateThresholdMinutes,
		MinimumHours:         r.MinimumHours,
		WeekendDays:          weekend,
		WorkHoursDisplay:     r.FormatWorkHours(),
		WeekendDaysDisplay:   r.FormatWeekendDays(),
	}
}

type UpdateRulesRequest struct {
	WorkStart            *ClockTime `json:"work_start,omitempty"`
	WorkEnd              *ClockTime `json:"work_end,omitempty"`
	LateThresholdMinutes *int       `json:"late_threshold_minutes,omitempty"`
	MinimumHours         *float64   `json:"minimum_hours,omitempty"`
	WeekendDays          []int      `json:"weekend_days,omitempty"`
}

func validateClock(errs validator.ValidationErrors, field string, t ClockTime) validator.ValidationErrors {
	if t.Hour < 0 || t.Hour > 23 {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: "hour must be between 0 and 23",
		})
	}
	if t.Minute < 0 || t.Minute > 59 {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: "minute must be between 0 and 59",
		})
	}
	return errs
}

func (r *UpdateRulesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkStart != nil {
		errs = validateClock(errs, "work_start", *r.WorkStart)
	}
	if r.WorkEnd != nil {
		errs = validateClock(errs, "work_end", *r.WorkEnd)
	}
	if r.LateThresholdMinutes != nil && *r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold_minutes",
			Message: "late threshold must not be negative",
		})
	}
	if r.MinimumHours != nil && (*r.MinimumHours < 0 || *r.MinimumHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "minimum_hours",
			Message: "minimum hours must be between 0 and 24",
		})
	}
	for _, d := range r.WeekendDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekend_days",
				Message: "weekend day indices must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFieldRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

func (r *UpdateFieldRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Field) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field is required",
		})
	}
	if len(r.Value) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply decodes the raw value and sets the addressed field on a copy of the
// current rules. Unknown paths return ErrUnknownField.
func (r *UpdateFieldRequest) Apply(current Rules) (Rules, error) {
	updated := current

	setInt := func(dst *int, min, max int) error {
		var v int
		if err := json.Unmarshal(r.Value, &v); err != nil {
			return validator.ValidationErrors{{Field: r.Field, Message: "value must be an integer"}}
		}
		if v < min || v > max {
			return validator.ValidationErrors{{
				Field:   r.Field,
				Message: fmt.Sprintf("value must be between %d and %d", min, max),
			}}
		}
		*dst = v
		return nil
	}

	switch r.Field {
	case FieldWorkStartHour:
		return updated, setInt(&updated.WorkStart.Hour, 0, 23)
	case FieldWorkStartMinute:
		return updated, setInt(&updated.WorkStart.Minute, 0, 59)
	case FieldWorkEndHour:
		return updated, setInt(&updated.WorkEnd.Hour, 0, 23)
	case FieldWorkEndMinute:
		return updated, setInt(&updated.WorkEnd.Minute, 0, 59)
	case FieldLateThreshold:
		return updated, setInt(&updated.LateThresholdMinutes, 0, 24*60)
	case FieldMinimumHours:
		var v float64
		if err := json.Unmarshal(r.Value, &v); err != nil {
			return current, validator.ValidationErrors{{Field: r.Field, Message: "value must be a number"}}
		}
		if v < 0 || v > 24 {
			return current, validator.ValidationErrors{{Field: r.Field, Message: "value must be between 0 and 24"}}
		}
		updated.MinimumHours = v
		return updated, nil
	case FieldWeekendDays:
		var days []int
		if err := json.Unmarshal(r.Value, &days); err != nil {
			return current, validator.ValidationErrors{{Field: r.Field, Message: "value must be an array of weekday indices"}}
		}
		for _, d := range days {
			if d < 0 || d > 6 {
				return current, validator.ValidationErrors{{Field: r.Field, Message: "weekday indices must be between 0 and 6"}}
			}
		}
		updated.WeekendDays = days
		return updated, nil
	default:
		return current, ErrUnknownField
	}
}
