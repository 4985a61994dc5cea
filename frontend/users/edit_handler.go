package users

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	sessioncontext "github.com/MannavaSravanthi/user-management-ui/frontend/shared/context"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/forms"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/apiclient"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/audit"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/directory"
)

func targetUserID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// EditUserPageHandler renders the edit form for a user on the cached page.
// The phone is shown pre-normalized to the national display form.
func EditUserPageHandler(directories *directory.Registry) http.HandlerFunc {
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
		user.Phone = forms.FormatPhoneNational(user.Phone)

		profile, ok := sessioncontext.GetProfileFromContext(r.Context())
		navData := nav.BuildTopNavData(profile, ok)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := EditUserPage(navData, user, r.URL.Query().Get("error")).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render edit page", http.StatusInternalServerError)
		}
	}
}

// UpdateUserCommandHandler normalizes the phone, validates the constrained
// payload, sends the PUT, and refetches the directory once the write has
// completed.
func UpdateUserCommandHandler(api *apiclient.Client, directories *directory.Registry, fv *forms.Validator, auditSvc *audit.Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := targetUserID(r)
		if err != nil {
			http.Redirect(w, r, "/users?error="+url.QueryEscape("invalid user id"), http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/users?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		form := forms.EditForm{
			Phone: forms.FormatPhoneNational(forms.CleanPhoneDigits(r.FormValue("phone"))),
			Role:  strings.TrimSpace(r.FormValue("role")),
		}
		if msgs := fv.Validate(form); len(msgs) > 0 {
			http.Redirect(w, r, "/users/"+strconv.FormatInt(id, 10)+"/edit?error="+url.QueryEscape(strings.Join(msgs, "; ")), http.StatusSeeOther)
			return
		}

		err = api.UpdateUser(r.Context(), id, apiclient.UpdateUserRequest{Phone: form.Phone, Role: form.Role})
		if err != nil {
			if errors.Is(err, apiclient.ErrUnauthorized) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			log.Warn().Int64("user_id", id).Err(err).Msg("update user rejected")
			http.Redirect(w, r, "/users/"+strconv.FormatInt(id, 10)+"/edit?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		// Refetch only after the write has completed, never speculatively.
		dir := directories.For(sessionKey(r))
		dir.Refetch(r.Context())
		win := dir.Window()

		profile, _ := sessioncontext.GetProfileFromContext(r.Context())
		auditSvc.Record(r.Context(), profile.UserID, audit.ActionUpdateUser, strconv.FormatInt(id, 10), form.Phone)

		// Keep the admin on the page window they were editing from.
		http.Redirect(w, r, fmt.Sprintf("/users?page=%d&size=%d&status=%s",
			win.Page, win.Size, url.QueryEscape("User updated successfully.")), http.StatusSeeOther)
	}
}
