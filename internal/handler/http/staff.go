package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/acss-labs/acss-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// Register implements StaffHandler.
func (h *StaffHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req staff.RegisterStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Staff register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.staffService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Staff register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff member registered", "staff_id", created.ID)
	response.Created(w, "Staff member registered", created)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	member, err := h.staffService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, member)
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	list, err := h.staffService.List(r.Context(), search)
	if err != nil {
		slog.Error("Staff list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req staff.UpdateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Staff update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.staffService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Staff update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated", updated)
}

// ToggleStatus implements StaffHandler.
func (h *StaffHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	updated, err := h.staffService.ToggleStatus(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff status toggled", updated)
}

// Remove implements StaffHandler.
func (h *StaffHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.staffService.Remove(r.Context(), id); err != nil {
		slog.Error("Staff remove service error", "error", err, "staff_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff member removed", "staff_id", id)
	response.SuccessWithMessage(w, "Staff member removed", nil)
}
