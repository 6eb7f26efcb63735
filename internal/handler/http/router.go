package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nexhr/hr-backend-go/internal/handler/http/middleware"
	"github.com/nexhr/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	performanceHandler PerformanceHandler,
	onboardingHandler OnboardingHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/active", employeeHandler.ListActive)
				r.Get("/low-performance", employeeHandler.ListLowPerformance)
				r.Get("/tenure/{years}", employeeHandler.ListByTenure)
				r.Get("/manager/{id}", employeeHandler.ListByManager)
				r.Get("/department/{department}", employeeHandler.ListByDepartment)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Post("/", attendanceHandler.Create)
				r.Get("/today", attendanceHandler.ListToday)
				r.Get("/date/{date}", attendanceHandler.ListByDate)
				r.Get("/date-range", attendanceHandler.ListByDateRange)
				r.Get("/late/{date}", attendanceHandler.ListLateArrivals)
				r.Get("/overtime/{date}", attendanceHandler.ListOvertime)

				r.Route("/employee/{id}", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListByEmployee)
					r.Get("/today", attendanceHandler.GetEmployeeToday)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", attendanceHandler.Get)
					r.Put("/clock-out", attendanceHandler.ClockOut)
					r.Delete("/", attendanceHandler.Delete)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/", performanceHandler.List)
				r.Post("/", performanceHandler.Create)

				r.Route("/employee/{id}", func(r chi.Router) {
					r.Get("/", performanceHandler.ListByEmployee)
					r.Get("/latest", performanceHandler.GetLatestByEmployee)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", performanceHandler.Get)
					r.Delete("/", performanceHandler.Delete)
				})
			})

			r.Route("/onboarding", func(r chi.Router) {
				r.Get("/", onboardingHandler.List)
				r.Post("/", onboardingHandler.Create)
				r.Get("/employee/{id}", onboardingHandler.ListByEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", onboardingHandler.Get)
					r.Patch("/completion", onboardingHandler.SetCompleted)
					r.Delete("/", onboardingHandler.Delete)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", dashboardHandler.GetStats)
			})
		})
	})

	return r
}
