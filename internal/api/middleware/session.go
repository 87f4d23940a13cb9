// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SohamNaik26/wealth-management/internal/api/response"
	"github.com/SohamNaik26/wealth-management/internal/auth"
	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
)

type contextKey string

const (
	tokenContextKey   contextKey = "session.token"
	subjectContextKey contextKey = "session.subject"
)

// RequireSession gates a route on the presence of a valid bearer token.
// The raw token and its subject are stashed in the request context so
// handlers can forward the credential to the remote backend.
// Returns 401 Unauthorized when the token is absent, malformed, or expired.
func RequireSession(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondMissingCredential(w, "Missing bearer token")
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				respondMissingCredential(w, "Malformed Authorization header")
				return
			}

			subject, ok := tokens.Verify(token)
			if !ok {
				respondMissingCredential(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			ctx = context.WithValue(ctx, subjectContextKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondMissingCredential(w http.ResponseWriter, details string) {
	response.RespondError(w, http.StatusUnauthorized, apperrors.ErrMissingCredential.Error(), details)
}

// TokenFromContext returns the verified bearer token carried by the request,
// or the empty string outside a RequireSession route.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// SubjectFromContext returns the session subject, or the empty string
// outside a RequireSession route.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectContextKey).(string)
	return subject
}
