package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	userService user.UserService,
	trackingHandler TrackingHandler,
	dayOffHandler DayOffHandler,
	reportHandler ReportHandler,
	userHandler UserHandler,
	operationHandler OperationHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.ExternalIDHeader},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

		// Everything requires a gateway-asserted identity
		r.Group(func(r chi.Router) {
			r.Use(middleware.Identity(userService))

			r.Get("/me", userHandler.Me)

			r.Route("/tracking", func(r chi.Router) {
				r.Post("/shift/start", trackingHandler.StartShift)
				r.Post("/shift/end", trackingHandler.EndShift)
				r.Post("/break/start", trackingHandler.StartBreak)
				r.Post("/break/end", trackingHandler.EndBreak)
				r.Post("/photo", trackingHandler.SubmitPhoto)
				r.Get("/status", trackingHandler.Status)
				r.Get("/worktime", trackingHandler.WorkTime)
			})

			r.Route("/dayoffs", func(r chi.Router) {
				r.Get("/available", dayOffHandler.Available)
				r.Post("/", dayOffHandler.Book)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/reports/attendance", reportHandler.GetAttendanceReport)

				r.Route("/admin", func(r chi.Router) {
					r.Route("/users", func(r chi.Router) {
						r.Get("/", userHandler.List)
						r.Get("/{id}", userHandler.Get)
						r.Put("/{id}", userHandler.Update)
						r.Delete("/{id}", userHandler.Delete)
					})

					r.Get("/operations", operationHandler.List)

					r.Route("/dayoffs", func(r chi.Router) {
						r.Get("/", dayOffHandler.List)
						r.Delete("/{date}", dayOffHandler.Cancel)
					})
				})
			})
		})
	})

	return r
}
