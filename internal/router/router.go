package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/campushub-dev/campushub/internal/middleware"
	"github.com/campushub-dev/campushub/internal/middleware/metrics"
	rl "github.com/campushub-dev/campushub/internal/middleware/ratelimiter"
	"github.com/campushub-dev/campushub/internal/setup"
)

// New creates and configures the chi router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints combined in that group
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(metrics.Middleware)

	// setup CORS for frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:8081"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Backend CSP: strict policy (JSON API only, no scripts/styles needed)
	backendCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, backendCSP))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/v1", func(v1 chi.Router) {
		// coarse per-IP limit in front of everything, incl. unauthenticated probes
		v1.Use(mw.RateLimit(rl.Rps100(), mw.GetIP))

		v1.Get("/health", h.Health)
		v1.Get("/ready", h.Ready)

		// Admin routes
		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(authMw.AdminOnly())
			admin.Post("/communities", h.CreateCommunity)
			admin.Put("/communities/{community}/moderators", h.SetModerators)
		})

		// Logged-in user routes
		v1.Group(func(loggedIn chi.Router) {
			loggedIn.Use(authMw.NeedAuth())
			loggedIn.Use(mw.RateLimit(rl.Rps10(), mw.GetUserIDFromContext))
			loggedIn.Use(mw.GlobalRateLimit(rl.Rps100()))

			loggedIn.Get("/threads/community/{community}", h.ListThreads)
			loggedIn.Get("/threads/{thread}", h.GetThread)
			loggedIn.Get("/communities/{community}", h.GetCommunity)

			// CreateThread: 1 per minute per user
			loggedIn.With(mw.RateLimit(rl.OnceInMinute(), mw.GetUserIDFromContext)).
				Post("/threads/create", h.CreateThread)
			// CreateReply: 1 per second per user
			loggedIn.With(mw.RateLimit(rl.OnceInSecond(), mw.GetUserIDFromContext)).
				Post("/threads/{thread}/reply", h.CreateReply)

			loggedIn.Post("/threads/{thread}/vote", h.VoteThread)
			loggedIn.Put("/threads/{thread}/pin", h.TogglePinnedThread)
			loggedIn.Put("/threads/{thread}/resolve", h.ToggleResolvedThread)
			loggedIn.Post("/threads/{thread}/replies/{reply}/vote", h.VoteReply)
			loggedIn.Put("/threads/{thread}/replies/{reply}/accept", h.ToggleAcceptedReply)
		})
	})

	// wildcard OPTIONS handler to avoid 404s for preflight requests
	r.MethodFunc(http.MethodOptions, "/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
