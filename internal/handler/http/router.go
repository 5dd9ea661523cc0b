package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/talentiq/talentiq-backend-go/internal/handler/http/middleware"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/token"
)

func NewRouter(
	tokenService token.Service,
	authHandler AuthHandler,
	mobilityHandler MobilityHandler,
	departmentHandler DepartmentHandler,
	employeeHandler EmployeeHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "talentiq"),
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

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", authHandler.SignUp)
			r.Post("/sign-in", authHandler.SignIn)
			r.Post("/callback/{provider}", authHandler.Callback)
			r.Get("/session", authHandler.GetSession)
			r.Post("/session", authHandler.UpdateSession)
			r.Post("/sign-out", authHandler.SignOut)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.JWTAuth()))
			r.Use(middleware.Authenticator)

			// HR only
			r.Route("/hr-api", func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Post("/update-mobility", mobilityHandler.UpdateMobility)
				r.Get("/departments", departmentHandler.List)
				r.Post("/departments", departmentHandler.Create)
			})

			r.Route("/employee", func(r chi.Router) {
				r.Get("/profile", employeeHandler.GetProfile)
				r.Put("/profile", employeeHandler.SaveProfile)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Delete("/users/{id}", adminHandler.DeleteUser)
			})
		})
	})
	return r
}
