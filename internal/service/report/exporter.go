package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/report"
	"github.com/acss-labs/acss-backend-go/internal/stats"
	"github.com/xuri/excelize/v2"
)

// exportHeader is the fixed column order of both export formats.
var exportHeader = []string{
	"Date", "Staff Name", "Department", "Status",
	"Check-In Time", "Check-Out Time", "Check-In Device", "Check-Out Device",
}

// ExportCSV implements report.ReportService. The writer handles quoting, so
// names and departments containing commas or quotes stay intact.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, req *report.ReportRequest) (*report.ExportResult, error) {
	rows, start, end, err := s.exportRows(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &report.ExportResult{
		Filename:    fmt.Sprintf("attendance_report_%s_to_%s.csv", start, end),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportXLSX implements report.ReportService.
func (s *ReportServiceImpl) ExportXLSX(ctx context.Context, req *report.ReportRequest) (*report.ExportResult, error) {
	rows, start, end, err := s.exportRows(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &report.ExportResult{
		Filename:    fmt.Sprintf("attendance_report_%s_to_%s.xlsx", start, end),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// exportRows renders one row per event, newest date first. Duplicate records
// for one member on one day each keep their own row, and missing values come
// out as "-". Exports are never paginated.
func (s *ReportServiceImpl) exportRows(ctx context.Context, req *report.ReportRequest) (rows [][]string, start, end string, err error) {
	if err := req.Validate(); err != nil {
		return nil, "", "", err
	}
	start, end, err = req.Resolve(s.now())
	if err != nil {
		return nil, "", "", err
	}

	events := s.filterEvents(start, end, req.StaffID)
	if len(events) == 0 {
		return nil, "", "", report.ErrEmptyReport
	}

	ordered := make([]attendance.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date > ordered[j].Date })

	for _, e := range ordered {
		rows = append(rows, []string{
			e.Date,
			e.StaffName,
			e.Department,
			stats.PresenceStatus(e),
			exportTimestamp(e.CheckIn),
			exportTimestamp(e.CheckOut),
			dash(e.CheckInDevice),
			dash(e.CheckOutDevice),
		})
	}
	return rows, start, end, nil
}

func exportTimestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

func dash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
