package users

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/html"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/directory"
)

// UsersListPage renders the paginated user table. A fetch error is shown as
// a banner above whatever rows the directory still holds, so a transient
// failure never blanks the table.
func UsersListPage(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav.TopNav(data.Nav).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="card"><h1>User List</h1>`); err != nil {
			return err
		}
		if err := html.Toast(data.Status, data.ErrorMessage).Render(ctx, w); err != nil {
			return err
		}
		if data.Snapshot.State == directory.StateErrored {
			if _, err := io.WriteString(w, `<div class="toast toast-error">`+templ.EscapeString(data.Snapshot.ErrorMessage)+`</div>`); err != nil {
				return err
			}
		}
		if err := renderTable(ctx, w, data); err != nil {
			return err
		}
		if err := renderPagination(w, data); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
	return html.Layout("User List", body)
}

func renderTable(ctx context.Context, w io.Writer, data PageData) error {
	showActions := data.Nav.Actions[nav.ActionEditUser] || data.Nav.Actions[nav.ActionDeleteUser]

	if _, err := io.WriteString(w, `<table class="users"><thead><tr>`+
		`<th>ID</th><th>First Name</th><th>Last Name</th><th>Username</th>`+
		`<th>Phone</th><th>Date of Birth</th><th>Role</th>`); err != nil {
		return err
	}
	if showActions {
		if _, err := io.WriteString(w, `<th>Actions</th>`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
		return err
	}

	for _, u := range data.Snapshot.Users {
		if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
			u.ID,
			templ.EscapeString(u.FirstName),
			templ.EscapeString(u.LastName),
			templ.EscapeString(u.Username),
			templ.EscapeString(u.Phone),
			templ.EscapeString(displayDate(u.DOB)),
			templ.EscapeString(u.Role)); err != nil {
			return err
		}
		if showActions {
			if _, err := fmt.Fprintf(w, `<td class="actions">`+
				`<a class="edit" href="/users/%d/edit">Edit</a> `+
				`<a class="delete" href="/users/%d/delete">Delete</a></td>`, u.ID, u.ID); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr>`); err != nil {
			return err
		}
	}

	if len(data.Snapshot.Users) == 0 {
		cols := 7
		if showActions {
			cols = 8
		}
		if _, err := fmt.Fprintf(w, `<tr><td colspan="%d" class="empty">No users found.</td></tr>`, cols); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}

func renderPagination(w io.Writer, data PageData) error {
	win := data.Snapshot.Window
	if _, err := io.WriteString(w, `<div class="pagination">`); err != nil {
		return err
	}
	if win.Page > 0 {
		if _, err := fmt.Fprintf(w, `<a href="/users?page=%d&size=%d">Previous</a> `, win.Page-1, win.Size); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<span>Page %d of %d (%d users)</span>`,
		win.Page+1, pageCount(data.Snapshot.TotalCount, win.Size), data.Snapshot.TotalCount); err != nil {
		return err
	}
	if (win.Page+1)*win.Size < data.Snapshot.TotalCount {
		if _, err := fmt.Fprintf(w, ` <a href="/users?page=%d&size=%d">Next</a>`, win.Page+1, win.Size); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ` <span class="sizes">Rows:`); err != nil {
		return err
	}
	for _, s := range PageSizes {
		if _, err := fmt.Fprintf(w, ` <a href="/users?page=0&size=%d">%d</a>`, s, s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</span></div>`)
	return err
}

func pageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	n := (total + size - 1) / size
	if n < 1 {
		n = 1
	}
	return n
}
