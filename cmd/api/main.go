package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/acss-labs/acss-backend-go/internal/cache"
	"github.com/acss-labs/acss-backend-go/internal/config"
	appHTTP "github.com/acss-labs/acss-backend-go/internal/handler/http"
	"github.com/acss-labs/acss-backend-go/internal/pkg/cron"
	"github.com/acss-labs/acss-backend-go/internal/pkg/database"
	"github.com/acss-labs/acss-backend-go/internal/pkg/jwt"
	"github.com/acss-labs/acss-backend-go/internal/repository/postgresql"
	attendanceService "github.com/acss-labs/acss-backend-go/internal/service/attendance"
	authService "github.com/acss-labs/acss-backend-go/internal/service/auth"
	dashboardService "github.com/acss-labs/acss-backend-go/internal/service/dashboard"
	reportService "github.com/acss-labs/acss-backend-go/internal/service/report"
	rulesService "github.com/acss-labs/acss-backend-go/internal/service/rules"
	staffService "github.com/acss-labs/acss-backend-go/internal/service/staff"
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

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	rulesRepo := postgresql.NewRulesRepository(db)

	snapshot := cache.NewSnapshot(staffRepo, eventRepo, rulesRepo)
	if err := snapshot.Load(context.Background()); err != nil {
		fmt.Println("Error loading snapshot:", err)
	}

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	staffSvc := staffService.NewStaffService(staffRepo, eventRepo, snapshot)
	attendanceSvc := attendanceService.NewAttendanceService(db, eventRepo, staffRepo, rulesRepo, snapshot)
	rulesSvc := rulesService.NewRulesService(rulesRepo, snapshot)
	dashboardSvc := dashboardService.NewDashboardService(snapshot)
	reportSvc := reportService.NewReportService(snapshot)

	scheduler := cron.NewScheduler()
	cron.RegisterSnapshotRefresh(scheduler, snapshot, cfg.Snapshot.RefreshInterval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc),
		Staff:      appHTTP.NewStaffHandler(staffSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Settings:   appHTTP.NewSettingsHandler(rulesSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
