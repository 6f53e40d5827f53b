package middleware

import (
	"net/http"
)

// SessionChecker reports whether an authenticated session is present.
type SessionChecker interface {
	IsAuthenticated() bool
}

// RequireSession gates dashboard routes behind session presence. It is a
// stateless pass-through re-evaluated on every request: unauthenticated
// requests are redirected to loginURL, everything else falls through.
func RequireSession(sessions SessionChecker, loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAuthenticated() {
				http.Redirect(w, r, loginURL, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
