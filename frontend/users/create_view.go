package users

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/html"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
)

// CreateUserPage renders the admin add-user form.
func CreateUserPage(navData nav.TopNavData, errorMessage string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav.TopNav(navData).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="card"><h1>Create User</h1>`); err != nil {
			return err
		}
		if err := html.Toast("", errorMessage).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<form method="POST" action="/users/new">`+
			`<label>First Name<input type="text" name="firstName" required></label>`+
			`<label>Last Name<input type="text" name="lastName" required></label>`+
			`<label>Username<input type="text" name="username" required></label>`+
			`<label>Date of Birth<input type="date" name="dob" required></label>`+
			`<label>Phone Number<input type="tel" name="phone" required></label>`+
			`<label>Password<input type="password" name="password" required></label>`+
			`<label>Confirm Password<input type="password" name="confirmPassword" required></label>`+
			`<label>Role<select name="role" required>`+
			`<option value="" disabled selected>Select Role</option>`+
			`<option value="Admin">Administrator</option>`+
			`<option value="Viewer">Viewer</option>`+
			`</select></label>`+
			`<button type="submit">Create User</button>`+
			`</form></main>`)
		return err
	})
	return html.Layout("Create User", body)
}
