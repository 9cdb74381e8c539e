package report

import (
	"time"

	"github.com/acss-labs/acss-backend-go/internal/pkg/validator"
)

// Date range presets accepted by the report endpoints.
const (
	PresetToday     = "today"
	PresetYesterday = "yesterday"
	PresetThisWeek  = "this_week"
	PresetThisMonth = "this_month"
	PresetThisYear  = "this_year"
	PresetCustom    = "custom"
)

type ReportRequest struct {
	Preset    string `json:"preset"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StaffID   string `json:"staff_id"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Preset {
	case "", PresetToday, PresetYesterday, PresetThisWeek, PresetThisMonth, PresetThisYear:
	case PresetCustom:
		if validator.IsEmpty(r.StartDate) || validator.IsEmpty(r.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "custom preset requires start_date and end_date",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "preset",
			Message: "preset must be one of today, yesterday, this_week, this_month, this_year, custom",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); r.StartDate != "" && !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); r.EndDate != "" && !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if r.StartDate != "" && r.EndDate != "" && r.StartDate > r.EndDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not precede start_date",
		})
	}

	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Limit > 100 {
		r.Limit = 100
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Resolve turns a preset into a concrete [start, end] pair. For the
// custom preset the explicit dates are returned as-is. Weeks start on
// Monday.
func (r *ReportRequest) Resolve(now time.Time) (start, end string, err error) {
	today := now.Format("2006-01-02")

	switch r.Preset {
	case "", PresetToday:
		return today, today, nil
	case PresetYesterday:
		y := now.AddDate(0, 0, -1).Format("2006-01-02")
		return y, y, nil
	case PresetThisWeek:
		offset := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -offset)
		return monday.Format("2006-01-02"), today, nil
	case PresetThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first.Format("2006-01-02"), today, nil
	case PresetThisYear:
		first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return first.Format("2006-01-02"), today, nil
	case PresetCustom:
		if r.StartDate == "" || r.EndDate == "" || r.StartDate > r.EndDate {
			return "", "", ErrInvalidDateRange
		}
		return r.StartDate, r.EndDate, nil
	default:
		return "", "", ErrUnknownPreset
	}
}

// ReportEntry is one staff/date row in the on-screen report table.
type ReportEntry struct {
	Date           string  `json:"date"`
	StaffID        string  `json:"staff_id"`
	StaffName      string  `json:"staff_name"`
	Department     string  `json:"department"`
	Status         string  `json:"status"`
	CheckIn        *string `json:"check_in,omitempty"`
	CheckOut       *string `json:"check_out,omitempty"`
	CheckInDevice  *string `json:"check_in_device,omitempty"`
	CheckOutDevice *string `json:"check_out_device,omitempty"`
	LateMinutes    int     `json:"late_minutes"`
}

// DaySummary aggregates one date inside the range.
type DaySummary struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
	Total   int    `json:"total"`
}

type ReportResponse struct {
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	TotalCount   int               `json:"total_count"`
	Page         int               `json:"page"`
	Limit        int               `json:"limit"`
	TotalPages   int               `json:"total_pages"`
	Summary      ReportSummary     `json:"summary"`
	Days         []DaySummary      `json:"days"`
	Entries      []ReportEntry     `json:"entries"`
	Distribution []StatusSlice     `json:"distribution"`
	Comparison   []StaffComparison `json:"comparison"`
}

// StatusSlice is one wedge of the status distribution chart.
type StatusSlice struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StaffComparison is one group in the per-staff comparison chart: raw
// check-in/check-out counts plus distinct days with a present or late
// classification.
type StaffComparison struct {
	StaffID     string `json:"staff_id"`
	StaffName   string `json:"staff_name"`
	Department  string `json:"department"`
	CheckIns    int    `json:"check_ins"`
	CheckOuts   int    `json:"check_outs"`
	DaysPresent int    `json:"days_present"`
}

// ReportSummary carries range-level aggregates plus the same aggregates
// for the preceding range of equal length, for comparison labels.
type ReportSummary struct {
	PresentCount   int     `json:"present_count"`
	LateCount      int     `json:"late_count"`
	AbsentCount    int     `json:"absent_count"`
	AttendanceRate float64 `json:"attendance_rate"`
	LateRate       float64 `json:"late_rate"`
	AbsenceRate    float64 `json:"absence_rate"`

	PrevPresentCount   int     `json:"prev_present_count"`
	PrevLateCount      int     `json:"prev_late_count"`
	PrevAbsentCount    int     `json:"prev_absent_count"`
	PrevAttendanceRate float64 `json:"prev_attendance_rate"`
}

// ExportResult holds a rendered report file ready to stream.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}
