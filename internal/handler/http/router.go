package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/portal-backend-go/internal/config"
	"github.com/cmlabs-hris/portal-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	navigationHandler NavigationHandler,
	employeeHandler EmployeeHandler,
	editSessionHandler EditSessionHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "portal-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Toast stream authenticates with its own short-lived token.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth(), jwtService.IsTokenRevoked))

			r.Get("/navigation", navigationHandler.Resolve)
			r.Get("/notifications/sse-token", notificationHandler.GetSSEToken)

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Post("/edit-session", editSessionHandler.Start)
				})
			})

			r.Route("/edit-sessions/{sessionID}", func(r chi.Router) {
				r.Get("/", editSessionHandler.Get)
				r.Delete("/", editSessionHandler.Close)
				r.Get("/dirty", editSessionHandler.Dirty)
				r.Put("/sections/{step}", editSessionHandler.UpdateSection)
				r.Post("/navigation", editSessionHandler.RequestNavigation)
				r.Post("/discard/confirm", editSessionHandler.ConfirmDiscard)
				r.Post("/discard/cancel", editSessionHandler.CancelDiscard)
				r.Post("/next", editSessionHandler.GoNext)
				r.Post("/back", editSessionHandler.GoBack)
				r.Post("/steps/{step}", editSessionHandler.GoToStep)
				r.Post("/avatar", editSessionHandler.StageAvatar)
				r.Post("/reinvite/confirm", editSessionHandler.ConfirmReinvite)
				r.Post("/save", editSessionHandler.Save)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
