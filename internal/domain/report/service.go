package report

import "context"

type ReportService interface {
	Generate(ctx context.Context, req *ReportRequest) (*ReportResponse, error)
	ExportCSV(ctx context.Context, req *ReportRequest) (*ExportResult, error)
	ExportXLSX(ctx context.Context, req *ReportRequest) (*ExportResult, error)
}
