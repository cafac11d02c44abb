// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/angelamos/realty/internal/core"
)

const (
	ClaimsKey contextKey = "session_claims"

	bearerPrefix = "Bearer "
)

// SessionClaims is the authenticated identity carried on the request
// context after token verification.
type SessionClaims struct {
	UserID int64
	Email  string
	Role   string
}

// TokenVerifier decodes a raw bearer token into session claims.
type TokenVerifier interface {
	Decode(ctx context.Context, raw string) (*SessionClaims, error)
}

// Authenticator verifies the Authorization header on every request and
// stores the resulting claims on the context. Requests without a valid
// token are rejected with 401.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := ExtractToken(r)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			claims, err := verifier.Decode(r.Context(), raw)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows the request through only when the authenticated
// caller holds one of the given roles. Must run after Authenticator.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				core.JSONError(w, core.UnauthorizedError(""))
				return
			}

			if _, ok := allowed[claims.Role]; !ok {
				core.JSONError(w, core.ForbiddenError(""))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is shorthand for RequireRole("ADMIN").
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole("ADMIN")
}

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", core.ErrUnauthorized
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return "", core.ErrTokenInvalid
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", core.ErrTokenInvalid
	}

	return token, nil
}

func handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	case errors.Is(err, core.ErrTokenInvalid):
		core.JSONError(w, core.TokenInvalidError())
	default:
		core.JSONError(w, core.UnauthorizedError(""))
	}
}

// GetClaims returns the session claims stored by Authenticator.
func GetClaims(ctx context.Context) (*SessionClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*SessionClaims)
	return claims, ok
}

func GetUserID(ctx context.Context) (int64, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

func GetUserEmail(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return claims.Email, true
}

func GetUserRole(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return claims.Role, true
}

func IsAdmin(ctx context.Context) bool {
	role, ok := GetUserRole(ctx)
	return ok && role == "ADMIN"
}
