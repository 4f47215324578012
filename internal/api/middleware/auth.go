// Package middleware holds the HTTP middleware chain: caller identity
// and request metrics.
package middleware

import (
	"context"
	"net/http"

	"github.com/tuj-devs/officehours-service/internal/api/handlers"
	"github.com/tuj-devs/officehours-service/internal/domain"
)

const (
	headerUserID   = "X-User-ID"
	headerUserName = "X-User-Name"
	headerUserRole = "X-User-Role"
)

type identityKeyType struct{}

var identityKey identityKeyType

// Identity is the authenticated caller, taken from gateway headers.
// Request bodies never carry identity.
type Identity struct {
	UserID string
	Name   string
	Role   domain.Role
}

// Logger is the logging interface for middleware.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth requires the identity headers and stores the caller in the
// request context. Requests without a user id get 401.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(headerUserID)
			if userID == "" {
				logger.Warn("%s %s - missing %s header", r.Method, r.URL.Path, headerUserID)
				handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			identity := Identity{
				UserID: userID,
				Name:   r.Header.Get(headerUserName),
				Role:   domain.Role(r.Header.Get(headerUserRole)),
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the caller stored by Auth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
