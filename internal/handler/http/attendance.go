package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/user"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/scanner"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	StartScanner(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
	launcher          *scanner.Launcher
	hub               *sse.Hub
}

func NewAttendanceHandler(attendanceService attendance.Service, launcher *scanner.Launcher, hub *sse.Hub) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		launcher:          launcher,
		hub:               hub,
	}
}

// Scan implements AttendanceHandler. The observation timestamp is read
// here, at the boundary; everything below receives it as data.
func (a *AttendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var scanReq attendance.ScanRequest

	if err := json.NewDecoder(r.Body).Decode(&scanReq); err != nil {
		slog.Error("Scan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	scanReq.ObservedAt = time.Now()
	scanReq.Method = attendance.MethodQR

	result, err := a.attendanceService.SubmitScan(r.Context(), scanReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Entrada registrada"
	if result.Kind == attendance.EventClockOut {
		message = "Salida registrada"
	}
	response.Created(w, message, result)
}

// List implements AttendanceHandler. Trabajador accounts only see their
// own records regardless of the filters they send.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.ListFilter

	if v := r.URL.Query().Get("fecha_inicio"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("fecha_fin"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("dni"); v != "" {
		filter.DNI = &v
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err == nil {
		if role, ok := claims["rol"].(string); ok && role == string(user.RoleWorker) {
			workerID, ok := claims["trabajador_id"].(string)
			if !ok || workerID == "" {
				response.Forbidden(w, "Worker account has no linked worker")
				return
			}
			filter.WorkerID = &workerID
			filter.DNI = nil
		}
	}

	records, err := a.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// StartScanner implements AttendanceHandler.
func (a *AttendanceHandlerImpl) StartScanner(w http.ResponseWriter, r *http.Request) {
	if err := a.launcher.Start(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Scanner started", nil)
}

// Events implements AttendanceHandler. Streams successful scans to the
// dashboard over SSE until the client disconnects.
func (a *AttendanceHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cleanup := a.hub.Subscribe(sse.TopicScans)
	defer cleanup()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("SSE encode error", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)
			flusher.Flush()
		}
	}
}
