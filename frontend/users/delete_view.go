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

// DeleteConfirmPage is the confirmation gate a caller must pass before the
// DELETE is issued.
func DeleteConfirmPage(navData nav.TopNavData, user models.UserRecord) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav.TopNav(navData).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<main class="card"><h1>Confirm Delete</h1>`+
			`<p>Are you sure you want to delete the user %s %s?</p>`+
			`<form method="POST" action="/users/%d/delete">`+
			`<a href="/users">No</a> <button type="submit" class="danger">Yes</button>`+
			`</form></main>`,
			templ.EscapeString(user.FirstName), templ.EscapeString(user.LastName), user.ID)
		return err
	})
	return html.Layout("Confirm Delete", body)
}
