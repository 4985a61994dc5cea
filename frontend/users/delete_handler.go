package users

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	sessioncontext "github.com/MannavaSravanthi/user-management-ui/frontend/shared/context"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/apiclient"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/audit"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/directory"
)

// DeleteUserPageHandler renders the confirmation gate.
func DeleteUserPageHandler(directories *directory.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := targetUserID(r)
		if err != nil {
			http.Redirect(w, r, "/users?error="+url.QueryEscape("invalid user id"), http.StatusSeeOther)
			return
		}

		user, found := directories.For(sessionKey(r)).Find(id)
		if !found {
			http.Redirect(w, r, "/users?error="+url.QueryEscape("user not found"), http.StatusSeeOther)
			return
		}

		profile, ok := sessioncontext.GetProfileFromContext(r.Context())
		navData := nav.BuildTopNavData(profile, ok)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := DeleteConfirmPage(navData, user).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render delete confirmation", http.StatusInternalServerError)
		}
	}
}

// DeleteUserCommandHandler issues the DELETE and, on success, refetches the
// current page. A page left short of its size is not auto-rewound.
func DeleteUserCommandHandler(api *apiclient.Client, directories *directory.Registry, auditSvc *audit.Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := targetUserID(r)
		if err != nil {
			http.Redirect(w, r, "/users?error="+url.QueryEscape("invalid user id"), http.StatusSeeOther)
			return
		}

		if err := api.DeleteUser(r.Context(), id); err != nil {
			if errors.Is(err, apiclient.ErrUnauthorized) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			log.Warn().Int64("user_id", id).Err(err).Msg("delete user rejected")
			http.Redirect(w, r, "/users?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		// Refetch is a direct continuation of the completed write.
		dir := directories.For(sessionKey(r))
		dir.Refetch(r.Context())
		win := dir.Window()

		profile, _ := sessioncontext.GetProfileFromContext(r.Context())
		auditSvc.Record(r.Context(), profile.UserID, audit.ActionDeleteUser, strconv.FormatInt(id, 10), "")

		// Send the admin back to the page they were on, short or not.
		http.Redirect(w, r, fmt.Sprintf("/users?page=%d&size=%d&status=%s",
			win.Page, win.Size, url.QueryEscape("User deleted successfully.")), http.StatusSeeOther)
	}
}
