package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acss-labs/acss-backend-go/internal/domain/report"
	"github.com/acss-labs/acss-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func reportRequestFromQuery(r *http.Request) *report.ReportRequest {
	q := r.URL.Query()
	req := &report.ReportRequest{
		Preset:    q.Get("preset"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		StaffID:   q.Get("staff_id"),
	}
	req.Page, _ = strconv.Atoi(q.Get("page"))
	req.Limit, _ = strconv.Atoi(q.Get("limit"))
	return req
}

// Generate implements ReportHandler.
func (h *ReportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	resp, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Report generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: int64(resp.TotalCount),
		TotalPages: resp.TotalPages,
	})
}

// ExportCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.reportService.ExportCSV)
}

// ExportXLSX implements ReportHandler.
func (h *ReportHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.reportService.ExportXLSX)
}

func (h *ReportHandlerImpl) export(w http.ResponseWriter, r *http.Request, render func(ctx context.Context, req *report.ReportRequest) (*report.ExportResult, error)) {
	req := reportRequestFromQuery(r)

	result, err := render(r.Context(), req)
	if err != nil {
		slog.Error("Report export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		slog.Error("Report export write error", "error", err)
	}
}
