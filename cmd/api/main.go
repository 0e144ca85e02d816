package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/config"
	appHTTP "github.com/asistencia-qr/attendance-backend-go/internal/handler/http"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/cron"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/database"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/jwt"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/scanner"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/sse"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/storage"
	"github.com/asistencia-qr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistencia-qr/attendance-backend-go/internal/service/attendance"
	authService "github.com/asistencia-qr/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/asistencia-qr/attendance-backend-go/internal/service/dashboard"
	"github.com/asistencia-qr/attendance-backend-go/internal/service/master"
	reportService "github.com/asistencia-qr/attendance-backend-go/internal/service/report"
	scheduleService "github.com/asistencia-qr/attendance-backend-go/internal/service/schedule"
	settingsService "github.com/asistencia-qr/attendance-backend-go/internal/service/settings"
	workerService "github.com/asistencia-qr/attendance-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	workerRepo := postgresql.NewWorkerRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	areaRepo := postgresql.NewAreaRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	hub := sse.NewHub()
	launcher := scanner.NewLauncher(cfg.Scanner.Command, cfg.Scanner.Args...)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	resolver := scheduleService.NewResolver(scheduleRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		txRunner,
		attendanceRepo,
		workerRepo,
		settingsRepo,
		resolver,
		hub,
	)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	workerSvc := workerService.NewWorkerService(workerRepo, fileStorage)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, workerRepo)
	masterSvc := master.NewMasterService(areaRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	reportSvc := reportService.NewReportService(reportRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)

	absenceMarker := attendanceService.NewAbsenceMarker(attendanceRepo, workerRepo, settingsRepo, resolver)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("mark-absences", 24*time.Hour, absenceMarker.Run)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, launcher, hub)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		workerHandler,
		scheduleHandler,
		masterHandler,
		dashboardHandler,
		reportHandler,
		settingsHandler,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
