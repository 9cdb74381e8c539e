package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/acss-labs/acss-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetRules(w http.ResponseWriter, r *http.Request)
	UpdateRules(w http.ResponseWriter, r *http.Request)
	UpdateRulesField(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	rulesService rules.RulesService
}

func NewSettingsHandler(rulesService rules.RulesService) SettingsHandler {
	return &SettingsHandlerImpl{rulesService: rulesService}
}

// GetRules implements SettingsHandler.
func (h *SettingsHandlerImpl) GetRules(w http.ResponseWriter, r *http.Request) {
	current, err := h.rulesService.Get(r.Context())
	if err != nil {
		slog.Error("Rules get service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}

// UpdateRules implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateRules(w http.ResponseWriter, r *http.Request) {
	var req rules.UpdateRulesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rules update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.rulesService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Rules update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance rules updated")
	response.SuccessWithMessage(w, "Attendance rules updated", updated)
}

// UpdateRulesField implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateRulesField(w http.ResponseWriter, r *http.Request) {
	var req rules.UpdateFieldRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rules field update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.rulesService.UpdateField(r.Context(), req)
	if err != nil {
		slog.Error("Rules field update service error", "error", err, "field", req.Field)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance rules field updated", "field", req.Field)
	response.SuccessWithMessage(w, "Attendance rules updated", updated)
}
