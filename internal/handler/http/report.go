package http

import (
	"net/http"
	"strconv"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Workers(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
	Lateness(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	Areas(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Workers implements ReportHandler.
func (h *ReportHandlerImpl) Workers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.Workers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// Attendance implements ReportHandler.
func (h *ReportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	filter := report.AttendanceFilter{
		StartDate: r.URL.Query().Get("fecha_inicio"),
		EndDate:   r.URL.Query().Get("fecha_fin"),
	}
	if v := r.URL.Query().Get("trabajador_id"); v != "" {
		filter.WorkerID = &v
	}
	if v := r.URL.Query().Get("area_id"); v != "" {
		filter.AreaID = &v
	}

	rows, err := h.reportService.Attendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// Lateness implements ReportHandler.
func (h *ReportHandlerImpl) Lateness(w http.ResponseWriter, r *http.Request) {
	filter := report.RangeFilter{
		StartDate: r.URL.Query().Get("fecha_inicio"),
		EndDate:   r.URL.Query().Get("fecha_fin"),
	}

	rows, err := h.reportService.Lateness(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("anio"))
	month, _ := strconv.Atoi(r.URL.Query().Get("mes"))
	filter := report.MonthFilter{Year: year, Month: month}

	rows, err := h.reportService.Monthly(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// Areas implements ReportHandler.
func (h *ReportHandlerImpl) Areas(w http.ResponseWriter, r *http.Request) {
	filter := report.RangeFilter{
		StartDate: r.URL.Query().Get("fecha_inicio"),
		EndDate:   r.URL.Query().Get("fecha_fin"),
	}

	rows, err := h.reportService.Areas(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}
