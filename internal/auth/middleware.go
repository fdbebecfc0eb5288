package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// contextKey is unexported so only this package can place or read the
// identity in a request context.
type contextKey string

const identityKey contextKey = "identity"

// RequireAuth enforces bearer-token authentication on protected routes.
//
// It reads the token from the Authorization header ("Bearer <token>"),
// verifies it, and stores the resulting Identity in the request context.
// A missing, malformed, or invalid token short-circuits the chain with
// 401 and the standard {"error": ...} body.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := identityFromRequest(r, tokens)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext retrieves the verified identity placed by RequireAuth.
// Returns (nil, false) if the request was not authenticated.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok && identity != nil
}

// identityFromRequest extracts and verifies the bearer token. The identity
// is extracted exactly once per request; handlers read it from the context.
func identityFromRequest(r *http.Request, tokens *TokenService) (*Identity, error) {
	header := r.Header.Get("Authorization")

	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenStr == "" {
		return nil, errors.New("auth: missing bearer token")
	}

	return tokens.Verify(tokenStr)
}
