// Package nav builds the authenticated navigation chrome and owns the
// role-to-affordance mapping.
package nav

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/MannavaSravanthi/user-management-ui/models"
)

// Action is an admin affordance the UI may expose.
type Action string

const (
	ActionAddUser    Action = "add-user"
	ActionEditUser   Action = "edit-user"
	ActionDeleteUser Action = "delete-user"
)

// VisibleActions maps a role to the set of admin affordances it may see.
// Pure so it can be tested without rendering; every view consults this
// instead of comparing roles inline.
func VisibleActions(role string) map[Action]bool {
	if role != models.RoleAdmin {
		return map[Action]bool{}
	}
	return map[Action]bool{
		ActionAddUser:    true,
		ActionEditUser:   true,
		ActionDeleteUser: true,
	}
}

// TopNavData is shared with page renderers.
type TopNavData struct {
	Name    string
	Actions map[Action]bool
}

// BuildTopNavData derives nav state from the session profile. hasProfile is
// false when the profile store has desynced from the credential; the nav then
// shows no admin affordances and a generic welcome.
func BuildTopNavData(p models.Profile, hasProfile bool) TopNavData {
	if !hasProfile {
		return TopNavData{Actions: VisibleActions("")}
	}
	return TopNavData{Name: p.Name, Actions: VisibleActions(p.Role)}
}

// TopNav renders the tab bar shown on every protected page.
func TopNav(data TopNavData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		welcome := "Welcome!"
		if data.Name != "" {
			welcome = fmt.Sprintf("Welcome %s!", templ.EscapeString(data.Name))
		}
		if _, err := io.WriteString(w, `<nav class="topnav"><div class="tabs">`+
			`<a href="/">Account Home</a>`+
			`<a href="/users">User List</a>`); err != nil {
			return err
		}
		if data.Actions[ActionAddUser] {
			if _, err := io.WriteString(w, `<a href="/users/new">Add User</a>`); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `</div><span class="welcome">%s</span>`+
			`<form method="POST" action="/logout" class="logout"><button type="submit">Logout</button></form></nav>`, welcome)
		return err
	})
}
