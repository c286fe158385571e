package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/lms-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(app config.AppConfig, employeeHandler EmployeeHandler, leaveHandler LeaveHandler, holidayHandler HolidayHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logLevel := requestLogLevel(app.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app.Name),
		slog.String("version", app.Version),
		slog.String("env", app.Env),
	)

	allowedOrigins := app.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Post("/register", employeeHandler.Register)
			r.Get("/", employeeHandler.ListEmployees)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/", employeeHandler.GetLeaveHistory)
					r.Post("/", leaveHandler.Apply)
					r.Post("/history", employeeHandler.GetLeaveHistoryInRange)
				})
				r.Get("/leave-balance", leaveHandler.GetBalance)

				r.Post("/extra-work", employeeHandler.LogExtraWork)
				r.Get("/comp-off-balance", employeeHandler.GetCompOffBalance)
			})
		})

		r.Post("/leaves/apply/{employeeID}", leaveHandler.Apply)
		r.Get("/leave-types", leaveHandler.ListTypes)
		r.Get("/holidays", holidayHandler.List)
	})
	return r
}

// requestLogLevel maps LOG_LEVEL onto slog, falling back to info.
func requestLogLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
