package login

import (
	"net/http"

	"github.com/MannavaSravanthi/user-management-ui/infrastructure/directory"
	sessioncookie "github.com/MannavaSravanthi/user-management-ui/infrastructure/session"
)

// LogoutHandler clears the credential, the durable profile and the session's
// directory cache, then returns to the login screen.
func LogoutHandler(sessions *sessioncookie.Store, directories *directory.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(sessioncookie.ProfileCookieName); err == nil && c.Value != "" {
			_ = sessions.Set(r.Context(), c.Value, nil)
			directories.Drop(c.Value)
		}
		http.SetCookie(w, sessioncookie.TokenCookie("", -1))
		http.SetCookie(w, sessioncookie.ProfileCookie("", -1))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
