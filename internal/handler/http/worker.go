package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetEstado(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.Service
}

func NewWorkerHandler(workerService worker.Service) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, workers)
}

// Get implements WorkerHandler.
func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.workerService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Create implements WorkerHandler. The body is multipart form data so
// the badge photo can travel with the registration fields.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Worker create parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	createReq := worker.CreateWorkerRequest{
		DNI:      r.FormValue("dni"),
		Names:    r.FormValue("nombres"),
		Surnames: r.FormValue("apellidos"),
		AreaID:   r.FormValue("id_area"),
	}
	if v := r.FormValue("email"); v != "" {
		createReq.Email = &v
	}
	if v := r.FormValue("id_horario"); v != "" {
		createReq.ScheduleID = &v
	}

	if file, header, err := r.FormFile("foto"); err == nil {
		defer file.Close()
		createReq.Photo = file
		createReq.PhotoInfo = header
	}

	resp, err := h.workerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Worker create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", resp)
}

// Update implements WorkerHandler.
func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Worker update parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var updateReq worker.UpdateWorkerRequest
	if v := r.FormValue("nombres"); v != "" {
		updateReq.Names = &v
	}
	if v := r.FormValue("apellidos"); v != "" {
		updateReq.Surnames = &v
	}
	if v := r.FormValue("email"); v != "" {
		updateReq.Email = &v
	}
	if v := r.FormValue("id_area"); v != "" {
		updateReq.AreaID = &v
	}
	if _, ok := r.MultipartForm.Value["id_horario"]; ok {
		v := r.FormValue("id_horario")
		updateReq.ScheduleID = &v
	}

	if file, header, err := r.FormFile("foto"); err == nil {
		defer file.Close()
		updateReq.Photo = file
		updateReq.PhotoInfo = header
	}

	resp, err := h.workerService.Update(r.Context(), id, updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", resp)
}

// SetEstado implements WorkerHandler. Workers are soft-disabled, never
// deleted, so their attendance history stays intact.
func (h *WorkerHandlerImpl) SetEstado(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.workerService.SetEstado(r.Context(), id, body.Estado); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker estado updated", nil)
}
