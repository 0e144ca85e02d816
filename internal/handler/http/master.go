package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/area"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	ListAreas(w http.ResponseWriter, r *http.Request)
	CreateArea(w http.ResponseWriter, r *http.Request)
	SetAreaEstado(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService area.Service
}

func NewMasterHandler(masterService area.Service) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ListAreas implements MasterHandler.
func (h *MasterHandlerImpl) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.masterService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, areas)
}

// CreateArea implements MasterHandler.
func (h *MasterHandlerImpl) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req area.CreateAreaRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.masterService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Area created successfully", resp)
}

// SetAreaEstado implements MasterHandler.
func (h *MasterHandlerImpl) SetAreaEstado(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.masterService.SetEstado(r.Context(), id, body.Estado); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Area estado updated", nil)
}
