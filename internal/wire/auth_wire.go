package wire

import (
	"course-portal/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	// Public, throttled per client IP
	r.With(g.rateLimit).Post("/api/register", authHandler.Register)
	r.With(g.rateLimit).Post("/api/login", authHandler.Login)
}
