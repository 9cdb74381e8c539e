package dashboard

import "context"

type DashboardService interface {
	// GetDashboard assembles the combined dashboard payload for a date
	// (YYYY-MM-DD) with a trend window of trendDays ending on that date.
	GetDashboard(ctx context.Context, date string, trendDays int) (*DashboardResponse, error)
}
