package http

import (
	"net/http"
	"net/url"

	sessioncontext "github.com/MannavaSravanthi/user-management-ui/frontend/shared/context"
	sessioncookie "github.com/MannavaSravanthi/user-management-ui/infrastructure/session"
)

// Guard gates every protected route: no credential means an immediate
// redirect to login with nothing else rendered. With a credential present it
// loads the profile into the request context; a missing profile (the two
// stores can desync) still passes, as a session without admin affordances.
func (s *Server) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCookie, err := r.Cookie(sessioncookie.TokenCookieName)
		if err != nil || tokenCookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := sessioncookie.NewContextWithCredential(r.Context(), tokenCookie.Value)

		if c, err := r.Cookie(sessioncookie.ProfileCookieName); err == nil && c.Value != "" {
			if profile, ok := s.Sessions.Get(ctx, c.Value); ok {
				ctx = sessioncontext.NewContextWithProfile(ctx, profile)
			} else {
				s.Log.Warn().Str("method", r.Method).Str("path", r.URL.Path).Msg("credential present but profile missing")
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin keeps non-admin sessions out of mutation routes. The remote
// API enforces authorization as well; this just keeps the UI honest.
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile, ok := sessioncontext.GetProfileFromContext(r.Context())
		if !ok || !profile.IsAdmin() {
			http.Redirect(w, r, "/users?error="+url.QueryEscape("admin access required"), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
