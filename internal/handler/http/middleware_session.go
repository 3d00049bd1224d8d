package http

import (
	"context"
	"net/http"

	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/internal/utils"
)

// requireLogin is the route guard for protected pages.
//
// It resolves the session cookie against the session store and, on a hit,
// places the sanitized session user and the session ID in the request
// context before delegating to the next handler. Anonymous requests (no
// cookie, unknown session, or expired session) are redirected to the login
// page rather than rejected with an error status.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, user, ok := h.currentUser(r)
		if !ok {
			logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("anonymous request on protected page")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionUserCtxKey, user)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
