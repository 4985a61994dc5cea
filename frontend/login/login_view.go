package login

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/html"
)

// GetLoginScreen renders the login form, with optional status (e.g. after
// signup) and error banners.
func GetLoginScreen(status, errorMessage string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="auth-card"><h1>Please login</h1>`); err != nil {
			return err
		}
		if err := html.Toast(status, errorMessage).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<form method="POST" action="/login">`+
			`<label>Username<input type="text" name="username" autocomplete="username" autofocus required></label>`+
			`<label>Password<input type="password" name="password" autocomplete="current-password" required></label>`+
			`<button type="submit">Log In</button>`+
			`</form></main>`)
		return err
	})
	return html.Layout("Login", body)
}
