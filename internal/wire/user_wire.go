package wire

import (
	"course-portal/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures profile and user administration routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g guards) {
	r.With(g.auth).Get("/api/me", userHandler.GetProfile)

	r.With(g.auth, g.admin).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Delete("/{id}", userHandler.DeactivateUser)
	})
}
