package attendance

import (
	"time"

	"github.com/acss-labs/acss-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	StaffID  string `json:"staff_id"`
	Action   string `json:"action"`    // check_in or check_out
	DeviceID string `json:"device_id"` // defaults to web-portal
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if r.Action != ActionCheckIn && r.Action != ActionCheckOut {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be check_in or check_out",
		})
	}
	if r.DeviceID == "" {
		r.DeviceID = "web-portal"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEventsFilter struct {
	Date      string `json:"date,omitempty"`       // YYYY-MM-DD, single day
	StartDate string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   string `json:"end_date,omitempty"`   // YYYY-MM-DD
	StaffID   string `json:"staff_id,omitempty"`   // empty or "all" means everyone

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListEventsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	for _, pair := range []struct{ name, value string }{
		{"date", f.Date}, {"start_date", f.StartDate}, {"end_date", f.EndDate},
	} {
		if pair.value != "" {
			if _, valid := validator.IsValidDate(pair.value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   pair.name,
					Message: pair.name + " must be in YYYY-MM-DD format",
				})
			}
		}
	}
	if f.StaffID == "all" {
		f.StaffID = ""
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID             string  `json:"id"`
	StaffID        string  `json:"staff_id"`
	StaffName      string  `json:"staff_name"`
	Department     string  `json:"department"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckInDevice  *string `json:"check_in_device,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	CheckOutDevice *string `json:"check_out_device,omitempty"`
}

// DayStatusCounts is one calendar day inside a monthly summary.
type DayStatusCounts struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Total   int    `json:"total"`
}

// MonthlySummaryResponse aggregates one calendar month for the attendance
// calendar view.
type MonthlySummaryResponse struct {
	Month        string            `json:"month"` // YYYY-MM
	DaysWithData int               `json:"days_with_data"`
	PresentCount int               `json:"present_count"`
	LateCount    int               `json:"late_count"`
	AbsentCount  int               `json:"absent_count"`
	Days         []DayStatusCounts `json:"days"`
}

type ListEventsResponse struct {
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	DayCount   int             `json:"day_count"`
	Events     []EventResponse `json:"events"`
}

// timePtrToString safely converts a *time.Time to a display string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

// MapEventToResponse converts an Event to its wire form. The status argument
// is the derived classification computed by the caller; it is never stored.
func MapEventToResponse(e Event, status string) EventResponse {
	return EventResponse{
		ID:             e.ID,
		StaffID:        e.StaffID,
		StaffName:      e.StaffName,
		Department:     e.Department,
		Date:           e.Date,
		Status:         status,
		CheckInTime:    timePtrToString(e.CheckIn),
		CheckInDevice:  e.CheckInDevice,
		CheckOutTime:   timePtrToString(e.CheckOut),
		CheckOutDevice: e.CheckOutDevice,
	}
}
