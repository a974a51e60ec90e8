package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/sweldo-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/sweldo-hr/payroll-backend-go/internal/handler/http"
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/database"
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/sweldo-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sweldo-hr/payroll-backend-go/internal/service/attendance"
	employeeService "github.com/sweldo-hr/payroll-backend-go/internal/service/employee"
	payrollService "github.com/sweldo-hr/payroll-backend-go/internal/service/payroll"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "sweldo-payroll"),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		cfg.Payroll.BatchPrefix,
		logger,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
