package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/report"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCSV_HeaderAndFilename(t *testing.T) {
	events := []attendance.Event{
		{ID: "e1", StaffID: "s1", StaffName: "Ayu Lestari", Department: "Engineering",
			Date: "2026-03-02", CheckIn: instant(t, "2026-03-02", 8, 50), CheckOut: instant(t, "2026-03-02", 17, 10)},
	}
	members := testMembers()[:2]
	svc := fixedService(t, members, events, time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local))

	result, err := svc.ExportCSV(context.Background(), &report.ReportRequest{
		Preset:    report.PresetCustom,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "attendance_report_2026-03-02_to_2026-03-02.csv", result.Filename)
	assert.Equal(t, "text/csv", result.ContentType)

	lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
	// header + one row per event
	require.Len(t, lines, 2)
	assert.Equal(t,
		"Date,Staff Name,Department,Status,Check-In Time,Check-Out Time,Check-In Device,Check-Out Device",
		lines[0])
}

func TestExportCSV_MissingValuesDashed(t *testing.T) {
	events := []attendance.Event{
		{ID: "e1", StaffID: "s1", StaffName: "Ayu Lestari", Department: "Engineering",
			Date: "2026-03-02", CheckIn: instant(t, "2026-03-02", 9, 5)},
	}
	svc := fixedService(t, testMembers()[:1], events, time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local))

	result, err := svc.ExportCSV(context.Background(), &report.ReportRequest{
		Preset:    report.PresetCustom,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "Checked In", row[3])
	assert.Equal(t, "2026-03-02 09:05:00", row[4])
	assert.Equal(t, "-", row[5]) // no check-out
	assert.Equal(t, "-", row[6]) // no device recorded
	assert.Equal(t, "-", row[7])
}

func TestExportCSV_RowPerEvent(t *testing.T) {
	events := []attendance.Event{
		{ID: "e1", StaffID: "s1", StaffName: "Ayu Lestari", Department: "Engineering",
			Date: "2026-03-02", CheckIn: instant(t, "2026-03-02", 8, 50), CheckOut: instant(t, "2026-03-02", 17, 10)},
		{ID: "e2", StaffID: "s2", StaffName: "Budi Santoso", Department: "Finance",
			Date: "2026-03-02", CheckIn: instant(t, "2026-03-02", 9, 5)},
	}
	svc := fixedService(t, testMembers(), events, time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local))

	result, err := svc.ExportCSV(context.Background(), &report.ReportRequest{
		Preset:    report.PresetCustom,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)

	// Two events over a three-member roster: nothing is synthesized for the
	// member without a record.
	require.Len(t, records, 3)
	assert.NotContains(t, string(result.Data), "Citra Dewi")
	assert.NotContains(t, string(result.Data), "No Data")
	assert.Equal(t, "Complete", records[1][3])
	assert.Equal(t, "Checked In", records[2][3])
}

func TestExportCSV_DuplicateSameDayEvents(t *testing.T) {
	events := []attendance.Event{
		{ID: "e1", StaffID: "s1", StaffName: "Ayu Lestari", Department: "Engineering",
			Date: "2026-03-02", CheckIn: instant(t, "2026-03-02", 8, 50)},
		{ID: "e2", StaffID: "s1", StaffName: "Ayu Lestari", Department: "Engineering",
			Date: "2026-03-02", CheckIn: instant(t, "2026-03-02", 13, 30)},
	}
	svc := fixedService(t, testMembers()[:1], events, time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local))

	result, err := svc.ExportCSV(context.Background(), &report.ReportRequest{
		Preset:    report.PresetCustom,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)

	// Each record keeps its own row; duplicates are not collapsed.
	require.Len(t, records, 3)
	assert.Equal(t, "2026-03-02 08:50:00", records[1][4])
	assert.Equal(t, "2026-03-02 13:30:00", records[2][4])
}

func TestExportCSV_EmptyRange(t *testing.T) {
	svc := fixedService(t, testMembers(), nil, time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local))

	_, err := svc.ExportCSV(context.Background(), &report.ReportRequest{
		Preset:    report.PresetCustom,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	assert.ErrorIs(t, err, report.ErrEmptyReport)
}

func TestExportCSV_EscapesCommasAndQuotes(t *testing.T) {
	members := []staff.Staff{
		{ID: "s1", Name: `Lestari, Ayu "AL"`, Department: "R&D, Platform", Status: staff.StatusPresent},
	}
	events := []attendance.Event{
		{ID: "e1", StaffID: "s1", StaffName: `Lestari, Ayu "AL"`, Department: "R&D, Platform",
			Date: "2026-03-02", CheckIn: instant(t, "2026-03-02", 8, 50)},
	}
	svc := fixedService(t, members, events, time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local))

	result, err := svc.ExportCSV(context.Background(), &report.ReportRequest{
		Preset:    report.PresetCustom,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	require.NoError(t, err)

	// A strict reader round-trips the quoted fields intact.
	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `Lestari, Ayu "AL"`, records[1][1])
	assert.Equal(t, "R&D, Platform", records[1][2])
}

func TestExportCSV_IgnoresPagination(t *testing.T) {
	var events []attendance.Event
	for _, d := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
		events = append(events, attendance.Event{
			ID: "e-" + d, StaffID: "s1", StaffName: "Ayu Lestari", Department: "Engineering",
			Date: d, CheckIn: instant(t, d, 8, 50),
		})
	}
	svc := fixedService(t, testMembers()[:1], events, time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local))

	result, err := svc.ExportCSV(context.Background(), &report.ReportRequest{
		Preset:    report.PresetCustom,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Page:      1,
		Limit:     1,
	})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + all three days
	assert.Equal(t, "2026-03-04", records[1][0])
	assert.Equal(t, "2026-03-02", records[3][0])
}

func TestExportXLSX(t *testing.T) {
	events := []attendance.Event{
		{ID: "e1", StaffID: "s1", StaffName: "Ayu Lestari", Department: "Engineering",
			Date: "2026-03-02", CheckIn: instant(t, "2026-03-02", 8, 50), CheckOut: instant(t, "2026-03-02", 17, 10)},
	}
	svc := fixedService(t, testMembers()[:1], events, time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local))

	result, err := svc.ExportXLSX(context.Background(), &report.ReportRequest{
		Preset:    report.PresetCustom,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "attendance_report_2026-03-02_to_2026-03-02.xlsx", result.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Ayu Lestari", rows[1][1])
	assert.Equal(t, "Complete", rows[1][3])
	assert.Equal(t, "2026-03-02 08:50:00", rows[1][4])
}
