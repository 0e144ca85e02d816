package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/asistencia-qr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	workerHandler WorkerHandler,
	scheduleHandler ScheduleHandler,
	masterHandler MasterHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
	settingsHandler SettingsHandler,
	uploadsPath string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Worker badge photos, served as-is.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsPath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// The scanner device posts here without a session.
		r.Post("/attendance", attendanceHandler.Scan)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/attendance", attendanceHandler.List)
			r.Get("/events/scans", attendanceHandler.Events)

			// Staff only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)

				r.Post("/attendance/start-scan", attendanceHandler.StartScanner)
				r.Get("/dashboard", dashboardHandler.GetMetrics)

				r.Route("/workers", func(r chi.Router) {
					r.Get("/", workerHandler.List)
					r.Get("/{id}", workerHandler.Get)
					r.Post("/", workerHandler.Create)
					r.Put("/{id}", workerHandler.Update)
					r.Patch("/{id}/estado", workerHandler.SetEstado)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/workers", reportHandler.Workers)
					r.Get("/attendance", reportHandler.Attendance)
					r.Get("/lateness", reportHandler.Lateness)
					r.Get("/monthly", reportHandler.Monthly)
					r.Get("/areas", reportHandler.Areas)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", scheduleHandler.List)
					r.Post("/", scheduleHandler.Create)
					r.Put("/{id}", scheduleHandler.Update)
					r.Delete("/{id}", scheduleHandler.Delete)
				})

				r.Route("/areas", func(r chi.Router) {
					r.Get("/", masterHandler.ListAreas)
					r.Post("/", masterHandler.CreateArea)
					r.Patch("/{id}/estado", masterHandler.SetAreaEstado)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", settingsHandler.GetPolicy)
					r.Put("/", settingsHandler.UpdatePolicy)
				})
			})
		})
	})
	return r
}
