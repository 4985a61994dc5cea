package users

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/html"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
	"github.com/MannavaSravanthi/user-management-ui/models"
)

// EditUserPage renders the constrained edit form: phone and role only.
func EditUserPage(navData nav.TopNavData, user models.UserRecord, errorMessage string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav.TopNav(navData).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<main class="card"><h1>Edit User</h1><p>Editing user <strong>%s %s</strong>.</p>`,
			templ.EscapeString(user.FirstName), templ.EscapeString(user.LastName)); err != nil {
			return err
		}
		if err := html.Toast("", errorMessage).Render(ctx, w); err != nil {
			return err
		}
		adminSel, viewerSel := "", ""
		switch user.Role {
		case models.RoleAdmin:
			adminSel = " selected"
		case models.RoleViewer:
			viewerSel = " selected"
		}
		_, err := fmt.Fprintf(w, `<form method="POST" action="/users/%d/edit">`+
			`<label>Phone Number<input type="tel" name="phone" value="%s" required></label>`+
			`<label>Role<select name="role" required>`+
			`<option value="Admin"%s>Administrator</option>`+
			`<option value="Viewer"%s>Viewer</option>`+
			`</select></label>`+
			`<button type="submit">Update</button> <a href="/users">Cancel</a>`+
			`</form></main>`,
			user.ID, templ.EscapeString(user.Phone), adminSel, viewerSel)
		return err
	})
	return html.Layout("Edit User", body)
}
