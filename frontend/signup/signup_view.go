package signup

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/html"
)

// GetSignupScreen renders the super-user signup form. The role is fixed to
// Admin; the checkbox mirrors the developer toggle that skips client-side
// validation.
func GetSignupScreen(errorMessage string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="auth-card"><h1>Sign Up as Super User!</h1>`); err != nil {
			return err
		}
		if err := html.Toast("", errorMessage).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<form method="POST" action="/signup">`+
			`<label>First Name<input type="text" name="firstName" required></label>`+
			`<label>Last Name<input type="text" name="lastName" required></label>`+
			`<label>Username<input type="text" name="username" required></label>`+
			`<label>Date of Birth<input type="date" name="dob" required></label>`+
			`<label>Phone Number<input type="tel" name="phone" required></label>`+
			`<label>Password<input type="password" name="password" required></label>`+
			`<label>Confirm Password<input type="password" name="confirmPassword" required></label>`+
			`<label class="checkbox"><input type="checkbox" name="disableValidation" value="1"> Disable client-side validations</label>`+
			`<button type="submit">Signup</button>`+
			`</form></main>`)
		return err
	})
	return html.Layout("Signup", body)
}
