package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/worktime-backend-go/internal/config"
	"github.com/attendly/worktime-backend-go/internal/domain/workday"
	appHTTP "github.com/attendly/worktime-backend-go/internal/handler/http"
	"github.com/attendly/worktime-backend-go/internal/pkg/database"
	"github.com/attendly/worktime-backend-go/internal/pkg/jwt"
	"github.com/attendly/worktime-backend-go/internal/repository/postgresql"
	authService "github.com/attendly/worktime-backend-go/internal/service/auth"
	departmentService "github.com/attendly/worktime-backend-go/internal/service/department"
	employeeService "github.com/attendly/worktime-backend-go/internal/service/employee"
	breakService "github.com/attendly/worktime-backend-go/internal/service/workbreak"
	workDayService "github.com/attendly/worktime-backend-go/internal/service/workday"
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

	workDayRepo := postgresql.NewWorkDayRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	policy := workday.Policy{
		DelayCutoff:        cfg.Workday.DelayCutoff,
		OvertimeCutoff:     cfg.Workday.OvertimeCutoff,
		StandardDayMinutes: cfg.Workday.StandardDayMinutes,
	}

	workDaySvc := workDayService.NewWorkDayService(workDayRepo, breakRepo, policy)
	breakSvc := breakService.NewBreakService(breakRepo, workDayRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	workDayHandler := appHTTP.NewWorkDayHandler(workDaySvc)
	breakHandler := appHTTP.NewBreakHandler(breakSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		workDayHandler,
		breakHandler,
		employeeHandler,
		departmentHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
