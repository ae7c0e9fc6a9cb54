package main

import (
	"fmt"
	"net/http"

	"github.com/campuslabs/monitoria-backend-go/internal/config"
	appHTTP "github.com/campuslabs/monitoria-backend-go/internal/handler/http"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/jwt"
	"github.com/campuslabs/monitoria-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/campuslabs/monitoria-backend-go/internal/service/adjustment"
	attendanceService "github.com/campuslabs/monitoria-backend-go/internal/service/attendance"
	authService "github.com/campuslabs/monitoria-backend-go/internal/service/auth"
	reportService "github.com/campuslabs/monitoria-backend-go/internal/service/report"
	scheduleService "github.com/campuslabs/monitoria-backend-go/internal/service/schedule"
	sysconfigService "github.com/campuslabs/monitoria-backend-go/internal/service/sysconfig"
	userService "github.com/campuslabs/monitoria-backend-go/internal/service/user"
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
	jwtRepo := postgresql.NewJWTRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	configRepo := postgresql.NewConfigRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	userSvc := userService.NewUserService(db, userRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, scheduleRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(db, adjustmentRepo, userRepo)
	configSvc := sysconfigService.NewConfigService(db, configRepo)
	reportSvc := reportService.NewReportService(db, reportRepo, configRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	configHandler := appHTTP.NewConfigHandler(configSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		userHandler,
		scheduleHandler,
		attendanceHandler,
		adjustmentHandler,
		configHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
