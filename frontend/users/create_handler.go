package users

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	sessioncontext "github.com/MannavaSravanthi/user-management-ui/frontend/shared/context"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/forms"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/apiclient"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/audit"
)

// CreateUserPageHandler renders the add-user form.
func CreateUserPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, ok := sessioncontext.GetProfileFromContext(r.Context())
		navData := nav.BuildTopNavData(profile, ok)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := CreateUserPage(navData, r.URL.Query().Get("error")).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render create user page", http.StatusInternalServerError)
		}
	}
}

// CreateUserCommandHandler validates and submits a new user through the
// authenticated endpoint, then sends the admin back to the list.
func CreateUserCommandHandler(api *apiclient.Client, fv *forms.Validator, auditSvc *audit.Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/users/new?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		phone := forms.FormatPhoneNational(forms.CleanPhoneDigits(r.FormValue("phone")))
		form := forms.SignupForm{
			FirstName:       strings.TrimSpace(r.FormValue("firstName")),
			LastName:        strings.TrimSpace(r.FormValue("lastName")),
			Username:        strings.TrimSpace(r.FormValue("username")),
			DOB:             strings.TrimSpace(r.FormValue("dob")),
			Phone:           phone,
			Password:        r.FormValue("password"),
			ConfirmPassword: r.FormValue("confirmPassword"),
			Role:            strings.TrimSpace(r.FormValue("role")),
		}

		if msgs := fv.Validate(form); len(msgs) > 0 {
			http.Redirect(w, r, "/users/new?error="+url.QueryEscape(strings.Join(msgs, "; ")), http.StatusSeeOther)
			return
		}

		err := api.CreateUser(r.Context(), apiclient.CreateUserRequest{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Phone:     form.Phone,
			DOB:       form.DOB,
			Password:  form.Password,
			Username:  form.Username,
			Role:      form.Role,
		})
		if err != nil {
			if errors.Is(err, apiclient.ErrUnauthorized) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			log.Warn().Err(err).Msg("create user rejected")
			http.Redirect(w, r, "/users/new?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		profile, _ := sessioncontext.GetProfileFromContext(r.Context())
		auditSvc.Record(r.Context(), profile.UserID, audit.ActionCreateUser, form.Username, "")

		http.Redirect(w, r, "/users?status="+url.QueryEscape("User created successfully"), http.StatusSeeOther)
	}
}
