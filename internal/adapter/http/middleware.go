package httpadapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

type identityKey struct{}

// corsMiddleware allows all origins and answers preflight requests with
// a plain 200 "ok" body. The allowed header list covers what browser
// clients of the dashboard and rewards app send.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuth resolves the bearer token to a user and stores it in the
// request context. The two failure modes are distinguished exactly as
// the clients expect: an absent header versus a token that does not
// resolve.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			h.writeError(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))

		user, err := h.auth.Identify(r.Context(), token)
		if err != nil {
			if errors.Is(err, port.ErrInvalidToken) {
				h.writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			h.internalError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin gates the dashboard surface on the admin role. It must
// run after requireAuth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := identityFrom(r.Context())
		if user == nil || user.Role != domain.RoleAdmin {
			h.writeError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// identityFrom returns the authenticated user stored by requireAuth,
// or nil outside an authenticated request.
func identityFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(identityKey{}).(*domain.User)
	return user
}

// clientIP prefers the X-Forwarded-For header and falls back to the
// connection's remote address without its port.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
