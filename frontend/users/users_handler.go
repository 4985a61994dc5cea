package users

import (
	"net/http"

	sessioncontext "github.com/MannavaSravanthi/user-management-ui/frontend/shared/context"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/directory"
)

// UsersPageQueryHandler fetches the requested page window into the session's
// directory and renders the table. Navigation always refetches, so the list
// reflects server truth; a failure keeps the previous rows on screen.
func UsersPageQueryHandler(directories *directory.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, ok := sessioncontext.GetProfileFromContext(r.Context())

		dir := directories.For(sessionKey(r))
		dir.Fetch(r.Context(), windowFromQuery(r))

		data := PageData{
			Nav:          nav.BuildTopNavData(profile, ok),
			Snapshot:     dir.Snapshot(),
			Status:       r.URL.Query().Get("status"),
			ErrorMessage: r.URL.Query().Get("error"),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := UsersListPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render users page", http.StatusInternalServerError)
		}
	}
}
