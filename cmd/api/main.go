package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sitekhata/labour-backend-go/internal/config"
	appHTTP "github.com/sitekhata/labour-backend-go/internal/handler/http"
	"github.com/sitekhata/labour-backend-go/internal/pkg/cron"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
	"github.com/sitekhata/labour-backend-go/internal/pkg/jwt"
	"github.com/sitekhata/labour-backend-go/internal/pkg/storage"
	"github.com/sitekhata/labour-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sitekhata/labour-backend-go/internal/service/attendance"
	authService "github.com/sitekhata/labour-backend-go/internal/service/auth"
	dashboardService "github.com/sitekhata/labour-backend-go/internal/service/dashboard"
	expenseService "github.com/sitekhata/labour-backend-go/internal/service/expense"
	labourService "github.com/sitekhata/labour-backend-go/internal/service/labour"
	paymentService "github.com/sitekhata/labour-backend-go/internal/service/payment"
	payrollService "github.com/sitekhata/labour-backend-go/internal/service/payroll"
	siteService "github.com/sitekhata/labour-backend-go/internal/service/site"
	userService "github.com/sitekhata/labour-backend-go/internal/service/user"
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

	loc, err := time.LoadLocation(cfg.Dashboard.TimeZone)
	if err != nil {
		log.Fatal("Invalid DASHBOARD_TIMEZONE: ", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	labourRepo := postgresql.NewLabourRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, auditRepo, jwtService)
	siteSvc := siteService.NewService(db, siteRepo)
	labourSvc := labourService.NewService(db, labourRepo, siteRepo, fileStorage)
	userSvc := userService.NewService(userRepo, siteRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, labourRepo, auditRepo)
	paymentSvc := paymentService.NewService(paymentRepo, labourRepo, auditRepo)
	expenseSvc := expenseService.NewService(expenseRepo, labourRepo, auditRepo)
	payrollSvc := payrollService.NewService(payrollRepo, siteRepo, labourRepo, attendanceRepo, paymentRepo, expenseRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo, loc)

	scheduler := cron.NewScheduler()
	cron.NewAuditJobs(auditRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Site:       appHTTP.NewSiteHandler(siteSvc),
		Labour:     appHTTP.NewLabourHandler(labourSvc),
		Manager:    appHTTP.NewManagerHandler(userSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentSvc),
		Expense:    appHTTP.NewExpenseHandler(expenseSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Audit:      appHTTP.NewAuditHandler(auditRepo),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
