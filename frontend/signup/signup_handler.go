package signup

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/forms"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/apiclient"
	"github.com/MannavaSravanthi/user-management-ui/models"
)

// GetSignupScreenHandler renders the signup form.
func GetSignupScreenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := GetSignupScreen(r.URL.Query().Get("error")).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render signup screen", http.StatusInternalServerError)
		}
	}
}

// CreateSignupHandler validates and submits the super-user signup. The role
// is forced to Admin.
func CreateSignupHandler(api *apiclient.Client, fv *forms.Validator, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/signup?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
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
			Role:            models.RoleAdmin,
		}

		if r.FormValue("disableValidation") == "" {
			if msgs := fv.Validate(form); len(msgs) > 0 {
				http.Redirect(w, r, "/signup?error="+url.QueryEscape(strings.Join(msgs, "; ")), http.StatusSeeOther)
				return
			}
		}

		err := api.Signup(r.Context(), apiclient.CreateUserRequest{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Phone:     form.Phone,
			DOB:       form.DOB,
			Password:  form.Password,
			Username:  form.Username,
			Role:      form.Role,
		})
		if err != nil {
			log.Warn().Err(err).Msg("signup rejected")
			http.Redirect(w, r, "/signup?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, "/login?status="+url.QueryEscape("Signup successful"), http.StatusSeeOther)
	}
}
