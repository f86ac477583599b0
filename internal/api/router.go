package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/challengehub/challengehub-backend/internal/api/handlers"
	"github.com/challengehub/challengehub-backend/internal/auth"
	"github.com/challengehub/challengehub-backend/internal/config"
	"github.com/challengehub/challengehub-backend/internal/metrics"
	"github.com/challengehub/challengehub-backend/internal/middleware"
	"github.com/challengehub/challengehub-backend/internal/services"
)

func NewRouter(cfg config.Config, tm *auth.TokenManager, us *services.UserService, cs *services.ChallengeService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(us)
	usersH := handlers.NewUsersHandler(us)
	challengesH := handlers.NewChallengesHandler(cs)
	authMW := middleware.NewAuthMiddleware(tm)

	// ---------- auth ----------
	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)
	r.Post("/auth/refresh", authH.Refresh)

	// ---------- challenges ----------
	r.Get("/challenges", challengesH.List)
	r.Get("/challenges/{id}", challengesH.Get)
	r.Group(func(r chi.Router) {
		r.Use(authMW.Auth)
		r.Post("/challenges", challengesH.Create)
	})

	// ---------- users ----------
	r.Group(func(r chi.Router) {
		r.Use(authMW.Auth)
		r.With(middleware.RequireRole("admin")).Get("/users", usersH.List)
		r.Get("/users/{id}", usersH.Get)
		r.Put("/users/me/profile", usersH.UpdateProfile)
		r.Put("/users/me/password", usersH.ChangePassword)
	})

	return r
}
