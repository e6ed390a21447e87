package http

import (
	"log/slog"
	"os"

	"github.com/attendash/attendance-backend-go/internal/config"
	"github.com/attendash/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendash/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Dashboard  DashboardHandler
	Settings   SettingsHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Device surface. The scanner authenticates with the shared key.
		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceKeyRequired(cfg.Device.APIKey))

			r.Post("/attendance", h.Attendance.Scan)
			r.Get("/employees/pending", h.Employee.ListPending)
			r.Put("/employees/enroll", h.Employee.Enroll)
			r.Get("/employees/fingerprint/{fingerprintID}", h.Employee.GetByFingerprint)
		})

		// Admin dashboard surface. Requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/attendance", h.Attendance.List)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/summary", h.Dashboard.Summary)
				r.Get("/absentees", h.Dashboard.Absentees)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", h.Report.Daily)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/time-windows", h.Settings.GetTimeWindows)
				r.Put("/time-windows", h.Settings.UpdateTimeWindows)
			})
		})
	})

	return r
}
