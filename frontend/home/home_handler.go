package home

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	sessioncontext "github.com/MannavaSravanthi/user-management-ui/frontend/shared/context"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/html"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
)

// HomePage renders the landing page behind the route guard.
func HomePage(navData nav.TopNavData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav.TopNav(navData).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<main class="card"><h1>Home Page</h1>`+
			`<p>Welcome to the home page! You are logged in.</p></main>`)
		return err
	})
	return html.Layout("Home", body)
}

// HomePageHandler renders the home page for the authenticated session.
func HomePageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, ok := sessioncontext.GetProfileFromContext(r.Context())
		navData := nav.BuildTopNavData(profile, ok)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := HomePage(navData).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render home page", http.StatusInternalServerError)
		}
	}
}
