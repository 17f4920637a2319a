package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/accesshub/accesshub/internal/platform/httpx"
	"github.com/accesshub/accesshub/internal/shared"
)

// Authenticator verifies the bearer token and stores the asserted identity in
// the request context. Requests without a valid token are rejected before any
// handler logic runs.
func Authenticator(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httpx.RespondError(w, fmt.Errorf("%w: invalid or missing token", shared.ErrUnauthenticated))
				return
			}
			identity, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				httpx.RespondError(w, fmt.Errorf("%w: invalid or missing token", shared.ErrUnauthenticated))
				return
			}
			next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// Require enforces the authorization table for op on the current identity.
// A deny produces no side effects beyond the 403 response.
func Require(op shared.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := shared.IdentityFromContext(r.Context())
			if identity == nil {
				httpx.RespondError(w, fmt.Errorf("%w: invalid or missing token", shared.ErrUnauthenticated))
				return
			}
			if !shared.Authorize(identity.Role, op) {
				httpx.RespondError(w, fmt.Errorf("%w: role %s may not perform this operation", shared.ErrForbidden, identity.Role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
