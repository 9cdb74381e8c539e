package dashboard

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Summary        SummaryResponse        `json:"summary"`
	Week           TimeframeStats         `json:"week"`
	Month          TimeframeStats         `json:"month"`
	Trend          []TrendPointResponse   `json:"trend"`
	Departments    []DepartmentBreakdown  `json:"departments"`
	RecentActivity []RecentActivityItem   `json:"recent_activity"`
	Rules          DashboardRulesResponse `json:"rules"`
}

// TimeframeStats aggregates a window ending on the summary date (current
// week from Monday, current month from the 1st).
type TimeframeStats struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	PresentCount   int     `json:"present_count"`
	LateCount      int     `json:"late_count"`
	AbsentCount    int     `json:"absent_count"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// ========== SUMMARY CARDS ==========

// SummaryResponse backs the stat cards at the top of the dashboard
type SummaryResponse struct {
	TotalStaff     int     `json:"total_staff"`
	ActiveStaff    int     `json:"active_staff"`
	PresentCount   int     `json:"present_count"`
	LateCount      int     `json:"late_count"`
	AbsentCount    int     `json:"absent_count"`
	AttendanceRate float64 `json:"attendance_rate"`
	LateRate       float64 `json:"late_rate"`
	AbsenceRate    float64 `json:"absence_rate"`
	Date           string  `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== TREND (line chart) ==========

// TrendPointResponse is one point on the attendance trend chart
type TrendPointResponse struct {
	Date       string  `json:"date"`
	PresentPct float64 `json:"present_pct"`
	LatePct    float64 `json:"late_pct"`
	AbsentPct  float64 `json:"absent_pct"`
}

// ========== DEPARTMENT BREAKDOWN (bar chart) ==========

// DepartmentBreakdown represents per-department attendance for a day
type DepartmentBreakdown struct {
	Department string `json:"department"`
	Present    int    `json:"present"`
	Late       int    `json:"late"`
	Absent     int    `json:"absent"`
	Total      int    `json:"total"`
}

// ========== RECENT ACTIVITY ==========

// RecentActivityItem represents one row in the latest check-ins list
type RecentActivityItem struct {
	StaffName  string  `json:"staff_name"`
	Department string  `json:"department"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`  // Format: "HH:MM"
	CheckOut   *string `json:"check_out,omitempty"` // Format: "HH:MM"
	Device     *string `json:"device,omitempty"`
}

// DashboardRulesResponse echoes the active rules so the UI can label the
// late cutoff without a second request.
type DashboardRulesResponse struct {
	WorkHours            string `json:"work_hours"`
	LateThresholdMinutes int    `json:"late_threshold_minutes"`
	WeekendDays          string `json:"weekend_days"`
}
