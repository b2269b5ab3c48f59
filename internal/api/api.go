// Package api exposes settleup over HTTP: JSON handlers for accounts,
// groups, invitations, and expense bookkeeping.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"settleup/internal/auth"
	"settleup/internal/middleware"
	"settleup/internal/service"
)

// Server bundles the application services behind HTTP handlers.
type Server struct {
	auths    *service.AuthService
	groups   *service.GroupService
	jwt      *auth.JWTManager
	validate *validator.Validate
}

// New creates a Server wired to the given services.
func New(auths *service.AuthService, groups *service.GroupService, jwt *auth.JWTManager) *Server {
	return &Server{
		auths:    auths,
		groups:   groups,
		jwt:      jwt,
		validate: validator.New(),
	}
}

// Router builds the HTTP routing table with logging, metrics, CORS, and
// JWT auth on the API surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.jwt))

			r.Post("/groups", s.handleCreateGroup)
			r.Get("/groups", s.handleListGroups)
			r.Get("/groups/{groupID}", s.handleGetGroup)
			r.Get("/groups/{groupID}/finances", s.handleGetFinances)
			r.Post("/groups/{groupID}/expenses", s.handleAddExpense)
			r.Post("/groups/{groupID}/invitations", s.handleInviteMember)

			r.Get("/invitations", s.handleListInvitations)
			r.Post("/invitations/{invitationID}/respond", s.handleRespondToInvitation)
		})
	})

	return r
}
