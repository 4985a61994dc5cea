package users

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/forms"
	"github.com/MannavaSravanthi/user-management-ui/frontend/shared/nav"
	"github.com/MannavaSravanthi/user-management-ui/infrastructure/directory"
	sessioncookie "github.com/MannavaSravanthi/user-management-ui/infrastructure/session"
	"github.com/MannavaSravanthi/user-management-ui/models"
)

// PageSizes are the row counts the list view offers.
var PageSizes = []int{5, 10, 25}

const defaultPageSize = 10

// PageData feeds the user list view.
type PageData struct {
	Nav          nav.TopNavData
	Snapshot     directory.Snapshot
	Status       string
	ErrorMessage string
}

// sessionKey identifies the browser session for the directory registry: the
// profile cookie when present, otherwise the credential itself.
func sessionKey(r *http.Request) string {
	if c, err := r.Cookie(sessioncookie.ProfileCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if c, err := r.Cookie(sessioncookie.TokenCookieName); err == nil {
		return c.Value
	}
	return ""
}

// windowFromQuery reads the zero-based page and the page size, clamping the
// size to the offered options.
func windowFromQuery(r *http.Request) models.PageWindow {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil {
		size = defaultPageSize
	}
	allowed := false
	for _, s := range PageSizes {
		if size == s {
			allowed = true
			break
		}
	}
	if !allowed {
		size = defaultPageSize
	}
	return models.PageWindow{Page: page, Size: size}
}

// displayDate converts a wire date to the list's display form.
func displayDate(dob string) string {
	t, err := time.Parse(forms.DateLayout, dob)
	if err != nil {
		return dob
	}
	return t.Format("01/02/2006")
}
