package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/yklabs/portal/pkg/jwtx"
	"github.com/yklabs/portal/pkg/slogx"
)

const bearerPrefix = "Bearer "

// AuthnMiddleware gates protected routes. A missing or unprefixed
// Authorization header is rejected with 401; any verification failure
// (tampered, malformed, expired) is rejected with 403 without telling the
// client which it was. On success the verified claims are attached to the
// request context for downstream handlers. No role checks happen here.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, bearerPrefix) {
				w.Header().Set("WWW-Authenticate", "Bearer")
				WriteError(w, http.StatusUnauthorized, "authorization token required")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, bearerPrefix))
			if raw == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				WriteError(w, http.StatusUnauthorized, "authorization token required")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				// Expired vs tampered is logged but not surfaced.
				log.Warn("token verification failed", "err", err)
				WriteError(w, http.StatusForbidden, "invalid token")
				return
			}

			ctx = contextWithIdentity(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithIdentity(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.UserID)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
