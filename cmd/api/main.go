package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/attendash/attendance-backend-go/internal/config"
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	appHTTP "github.com/attendash/attendance-backend-go/internal/handler/http"
	"github.com/attendash/attendance-backend-go/internal/pkg/cron"
	"github.com/attendash/attendance-backend-go/internal/pkg/database"
	"github.com/attendash/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendash/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendash/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendash/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/attendash/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/attendash/attendance-backend-go/internal/service/employee"
	reportService "github.com/attendash/attendance-backend-go/internal/service/report"
	settingsService "github.com/attendash/attendance-backend-go/internal/service/settings"
)

// seedTimeWindows writes the configured defaults on a fresh database. An
// existing row is never touched; runtime edits go through the settings
// endpoint.
func seedTimeWindows(ctx context.Context, repo settings.WindowsRepository, cfg config.WindowsConfig) error {
	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, settings.ErrWindowsNotFound) {
		return err
	}

	w, err := settings.ParseWindows(cfg.LoginStart, cfg.LoginEnd, cfg.LogoutStart, cfg.LogoutEnd)
	if err != nil {
		return fmt.Errorf("invalid default time windows: %w", err)
	}
	_, err = repo.Save(ctx, w)
	return err
}

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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	windowsRepo := postgresql.NewWindowsRepository(db)

	if err := seedTimeWindows(context.Background(), windowsRepo, cfg.Windows); err != nil {
		log.Fatal("Failed to seed time windows: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	windowsSvc := settingsService.NewWindowsService(windowsRepo)
	authSvc := authService.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, windowsSvc)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo, windowsSvc)
	reportSvc := reportService.NewReportService(attendanceRepo, windowsSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(dashboardSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Settings:   appHTTP.NewSettingsHandler(windowsSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
