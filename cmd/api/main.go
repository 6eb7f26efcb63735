package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/nexhr/hr-backend-go/internal/config"
	appHTTP "github.com/nexhr/hr-backend-go/internal/handler/http"
	"github.com/nexhr/hr-backend-go/internal/pkg/cache"
	"github.com/nexhr/hr-backend-go/internal/pkg/database"
	"github.com/nexhr/hr-backend-go/internal/pkg/jwt"
	"github.com/nexhr/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nexhr/hr-backend-go/internal/service/attendance"
	authService "github.com/nexhr/hr-backend-go/internal/service/auth"
	dashboardService "github.com/nexhr/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/nexhr/hr-backend-go/internal/service/employee"
	onboardingService "github.com/nexhr/hr-backend-go/internal/service/onboarding"
	performanceService "github.com/nexhr/hr-backend-go/internal/service/performance"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	onboardingRepo := postgresql.NewOnboardingTaskRepository(db)

	var statsCache cache.Cache
	if cfg.Cache.RedisAddr != "" {
		statsCache, err = cache.NewRedisCache(cfg.Cache.RedisAddr, "hr-backend")
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
	} else {
		statsCache = cache.NewMemoryCache()
	}
	defer statsCache.Close()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	estimator := employeeService.NewHashProjectEstimator()
	activitySource := dashboardService.NewStaticActivitySource()

	txRunner := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, performanceRepo, estimator, txRunner)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	onboardingSvc := onboardingService.NewOnboardingTaskService(onboardingRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		employeeRepo,
		attendanceRepo,
		performanceRepo,
		estimator,
		activitySource,
		statsCache,
		cfg.Cache.TTL,
	)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPerformanceHandler(performanceSvc),
		appHTTP.NewOnboardingHandler(onboardingSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
