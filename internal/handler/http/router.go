package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/handler/http/middleware"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	scheduleHandler ScheduleHandler,
	attendanceHandler AttendanceHandler,
	adjustmentHandler AdjustmentHandler,
	configHandler ConfigHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "monitoria-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/registro", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/usuarios/actual", userHandler.Current)

			r.Route("/horarios", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListOwn)
				r.Post("/", scheduleHandler.Create)
				r.Post("/multiple", scheduleHandler.CreateBulk)
				r.Put("/editar-multiple", scheduleHandler.ReplaceAll)
				r.Get("/{id}", scheduleHandler.Get)
				r.Put("/{id}", scheduleHandler.Update)
				r.Delete("/{id}", scheduleHandler.Delete)
			})

			r.Route("/asistencias", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListOwn)
				r.Post("/", attendanceHandler.Create)
				r.Get("/{id}", attendanceHandler.Get)
				r.Put("/{id}", attendanceHandler.Update)
				r.Delete("/{id}", attendanceHandler.Delete)
			})

			// Directivo only
			r.Route("/directivo", func(r chi.Router) {
				r.Use(middleware.RequireDirectivo)

				r.Get("/monitores", userHandler.ListMonitors)
				r.Post("/monitores/autorizar", userHandler.AuthorizeMonitor)

				r.Get("/horarios", scheduleHandler.ListAll)

				r.Get("/asistencias", attendanceHandler.ListAll)
				r.Post("/asistencias/{id}/autorizar", attendanceHandler.Authorize)

				r.Route("/ajustes", func(r chi.Router) {
					r.Get("/", adjustmentHandler.List)
					r.Post("/", adjustmentHandler.Create)
					r.Get("/{id}", adjustmentHandler.Get)
					r.Delete("/{id}", adjustmentHandler.Delete)
				})

				r.Route("/configuraciones", func(r chi.Router) {
					r.Get("/", configHandler.List)
					r.Post("/", configHandler.Create)
					r.Post("/inicializar", configHandler.Initialize)
					r.Get("/clave/{clave}", configHandler.GetByClave)
					r.Put("/clave/{clave}", configHandler.UpdateByClave)
					r.Delete("/clave/{clave}", configHandler.DeleteByClave)
					r.Get("/{id}", configHandler.GetByID)
					r.Put("/{id}", configHandler.UpdateByID)
					r.Delete("/{id}", configHandler.DeleteByID)
				})

				r.Get("/reportes/horas", reportHandler.Hours)
			})
		})
	})
	return r
}
