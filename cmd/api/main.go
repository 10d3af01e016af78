package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tracklabs/timecore-backend-go/internal/config"
	appHTTP "github.com/tracklabs/timecore-backend-go/internal/handler/http"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/clock"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/database"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/jwt"
	"github.com/tracklabs/timecore-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tracklabs/timecore-backend-go/internal/service/attendance"
	companyService "github.com/tracklabs/timecore-backend-go/internal/service/company"
	timelogService "github.com/tracklabs/timecore-backend-go/internal/service/timelog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	dailyRecordRepo := postgresql.NewDailyRecordRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	timeLogRepo := postgresql.NewTimeLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clk := clock.System()

	attendanceSvc := attendanceService.NewAttendanceService(dailyRecordRepo, employeeRepo, calendarRepo, clk)
	timeLogSvc := timelogService.NewTimeLogService(timeLogRepo, clk)
	companySvc := companyService.NewCompanyService(db, calendarRepo, clk)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	timeLogHandler := appHTTP.NewTimeLogHandler(timeLogSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.AllowedOrigins,
		attendanceHandler,
		timeLogHandler,
		companyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
