package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/leavedesk/leavedesk-backend-go/internal/config"
	appHTTP "github.com/leavedesk/leavedesk-backend-go/internal/handler/http"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/email"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leavedesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/leavedesk/leavedesk-backend-go/internal/service/attendance"
	authService "github.com/leavedesk/leavedesk-backend-go/internal/service/auth"
	employeeService "github.com/leavedesk/leavedesk-backend-go/internal/service/employee"
	holidayService "github.com/leavedesk/leavedesk-backend-go/internal/service/holiday"
	leaveService "github.com/leavedesk/leavedesk-backend-go/internal/service/leave"
	notificationService "github.com/leavedesk/leavedesk-backend-go/internal/service/notification"
	reportService "github.com/leavedesk/leavedesk-backend-go/internal/service/report"
	salaryService "github.com/leavedesk/leavedesk-backend-go/internal/service/salary"
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
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	notificationSvc := notificationService.NewService(notificationRepo, notificationService.Config{})
	defer notificationSvc.Stop()

	authSvc := authService.NewService(employeeRepo, jwtService, emailService)
	employeeSvc := employeeService.NewService(employeeRepo)
	leaveSvc := leaveService.NewService(txManager, leaveRequestRepo, employeeRepo, balanceRepo, holidayRepo, notificationSvc, emailService)
	attendanceSvc := attendanceService.NewService(txManager, attendanceRepo, balanceRepo, holidayRepo, notificationSvc)
	holidaySvc := holidayService.NewService(holidayRepo)
	salarySvc := salaryService.NewService(employeeRepo, leaveRequestRepo)
	reportSvc := reportService.NewService(reportRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Salary:       appHTTP.NewSalaryHandler(salarySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
