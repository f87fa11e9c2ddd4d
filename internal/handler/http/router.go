package http

import (
	"log/slog"
	"os"

	"github.com/attendly/worktime-backend-go/internal/handler/http/middleware"
	"github.com/attendly/worktime-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	workDayHandler WorkDayHandler,
	breakHandler BreakHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worktime-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workdays", func(r chi.Router) {
				r.Post("/", workDayHandler.Create)
				r.Post("/{id}/start", workDayHandler.Start)
				r.Post("/{id}/end", workDayHandler.End)

				r.Route("/employee/{employeeID}", func(r chi.Router) {
					r.Get("/", workDayHandler.ListByEmployee)
					r.Get("/overtime", workDayHandler.Overtime)
					r.Get("/delays", workDayHandler.Delays)
					r.Get("/vacations", workDayHandler.Vacations)
					r.Get("/sick-leaves", workDayHandler.SickLeaves)
					r.Get("/delegations", workDayHandler.Delegations)
					r.Get("/deficits", workDayHandler.Deficits)
					r.Get("/to-accept", workDayHandler.ToAcceptByEmployee)
					r.Get("/accepted", workDayHandler.Accepted)
					r.Get("/rejected", workDayHandler.Rejected)
					r.Get("/summary", workDayHandler.SummaryByEmployee)
				})

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/decision", workDayHandler.Decide)
					r.Route("/department/{departmentID}", func(r chi.Router) {
						r.Get("/to-accept", workDayHandler.ToAcceptByDepartment)
						r.Get("/accepted", workDayHandler.AcceptedByDepartment)
						r.Get("/rejected", workDayHandler.RejectedByDepartment)
						r.Get("/summary", workDayHandler.SummaryByDepartment)
					})
				})
			})

			r.Route("/breaks", func(r chi.Router) {
				r.Post("/", breakHandler.Open)
				r.Post("/{id}/end", breakHandler.Close)
				r.Get("/workday/{workDayID}", breakHandler.ListByWorkDay)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/department/{departmentID}", employeeHandler.ListByDepartment)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)
				r.Get("/{id}", departmentHandler.Get)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", departmentHandler.Create)
					r.Put("/{id}", departmentHandler.Update)
					r.Delete("/{id}", departmentHandler.Delete)
				})
			})
		})
	})
	return r
}
