package main

import (
	"fmt"
	"net/http"

	"github.com/ems-labs/ems-backend-go/internal/config"
	appHTTP "github.com/ems-labs/ems-backend-go/internal/handler/http"
	"github.com/ems-labs/ems-backend-go/internal/pkg/cron"
	"github.com/ems-labs/ems-backend-go/internal/pkg/database"
	"github.com/ems-labs/ems-backend-go/internal/pkg/jwt"
	"github.com/ems-labs/ems-backend-go/internal/pkg/oauth"
	"github.com/ems-labs/ems-backend-go/internal/pkg/sse"
	"github.com/ems-labs/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/ems-labs/ems-backend-go/internal/service/attendance"
	serviceAuth "github.com/ems-labs/ems-backend-go/internal/service/auth"
	dashboardService "github.com/ems-labs/ems-backend-go/internal/service/dashboard"
	employeeService "github.com/ems-labs/ems-backend-go/internal/service/employee"
	leaveService "github.com/ems-labs/ems-backend-go/internal/service/leave"
	workHoursService "github.com/ems-labs/ems-backend-go/internal/service/workhours"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	policy := attendanceService.NewPolicy(cfg.Attendance)
	aggregator := workHoursService.NewAggregator(cfg.Attendance.DailyTargetHours)

	authSvc := serviceAuth.NewAuthService(db, userRepo, employeeRepo, jwtService, jwtRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, policy, hub)
	workHoursSvc := workHoursService.NewWorkHoursService(attendanceRepo, aggregator)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, hub)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc, workHoursSvc),
		Events:     appHTTP.NewEventsHandler(hub, jwtService),
	}

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, handlers)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
