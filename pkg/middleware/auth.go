package middleware

import (
	"errors"
	"net/http"
	"strings"

	"course-portal/internal/data/entity"
	"course-portal/internal/data/repository"
	"course-portal/pkg/utils"

	"go.uber.org/zap"
)

// TokenValidator checks a bearer token and returns its claims
type TokenValidator interface {
	Validate(token string) (*utils.TokenClaims, error)
}

// Authenticate requires a valid bearer token that belongs to an active user.
// The user id and the stored role are put into the request context.
func Authenticate(tokens TokenValidator, users repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				msg := "Invalid token"
				if errors.Is(err, utils.ErrExpiredToken) {
					msg = "Token has expired"
				}
				logger.Debug("Token rejected", zap.Error(err))
				utils.ResponseUnauthorized(w, msg)
				return
			}

			user, err := users.FindByID(r.Context(), claims.Subject)
			if err != nil {
				logger.Error("Failed to load token subject",
					zap.String("user_id", claims.Subject.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsActive {
				logger.Warn("Token for missing or disabled user",
					zap.String("user_id", claims.Subject.String()))
				utils.ResponseUnauthorized(w, "User not found or inactive")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets the request through only when the authenticated role matches.
// It must run after Authenticate.
func RequireRole(role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			current, _ := utils.GetRoleFromContext(r.Context())
			if current != role {
				logger.Warn("Role check failed",
					zap.String("user_id", userID.String()),
					zap.String("role", string(current)),
					zap.String("required", string(role)),
					zap.String("path", r.URL.Path))
				if role == entity.RoleAdmin {
					utils.ResponseForbidden(w, "Admin access required")
					return
				}
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
