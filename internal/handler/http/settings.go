package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/settings"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetPolicy(w http.ResponseWriter, r *http.Request)
	UpdatePolicy(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// GetPolicy implements SettingsHandler.
func (h *SettingsHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.settingsService.GetPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, policy)
}

// UpdatePolicy implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdatePolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	policy, err := h.settingsService.UpdatePolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration updated", policy)
}
