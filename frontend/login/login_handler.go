package login

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MannavaSravanthi/user-management-ui/infrastructure/apiclient"
	sessioncookie "github.com/MannavaSravanthi/user-management-ui/infrastructure/session"
	"github.com/MannavaSravanthi/user-management-ui/models"
)

// GetLoginScreenHandler renders the login screen. When the user base is
// still empty the visitor is sent to signup to create the first super user.
func GetLoginScreenHandler(api *apiclient.Client, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		empty, err := api.IsUserBaseEmpty(r.Context())
		if err != nil {
			// Best effort; the login form still works if the check fails.
			log.Warn().Err(err).Msg("user base check failed")
		} else if empty {
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := GetLoginScreen(r.URL.Query().Get("status"), r.URL.Query().Get("error")).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render login screen", http.StatusInternalServerError)
		}
	}
}

// CreateLoginHandler authenticates against the user API and issues the
// credential cookie plus the durable profile.
func CreateLoginHandler(api *apiclient.Client, sessions *sessioncookie.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))
		if username == "" || password == "" {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("username and password are required"), http.StatusSeeOther)
			return
		}

		res, err := api.Login(r.Context(), username, password)
		if err != nil {
			var serverErr *apiclient.ServerError
			if errors.As(err, &serverErr) {
				http.Redirect(w, r, "/login?error="+url.QueryEscape("Invalid username or password"), http.StatusSeeOther)
				return
			}
			log.Error().Err(err).Msg("login request failed")
			http.Redirect(w, r, "/login?error="+url.QueryEscape("authentication failed"), http.StatusSeeOther)
			return
		}

		// Reuse the browser's profile key when it already has one so the
		// durable row is overwritten rather than orphaned.
		profileID := sessioncookie.NewProfileID()
		if c, err := r.Cookie(sessioncookie.ProfileCookieName); err == nil && c.Value != "" {
			profileID = c.Value
		}

		profile := models.Profile{UserID: res.ID, Name: res.Name, Role: res.Role}
		if err := sessions.Set(r.Context(), profileID, &profile); err != nil {
			log.Error().Err(err).Msg("persist profile failed")
			http.Redirect(w, r, "/login?error="+url.QueryEscape("failed to create session"), http.StatusSeeOther)
			return
		}

		http.SetCookie(w, sessioncookie.TokenCookie(res.Token, sessioncookie.TokenMaxAge))
		http.SetCookie(w, sessioncookie.ProfileCookie(profileID, sessioncookie.ProfileMaxAge))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
