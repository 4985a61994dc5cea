// Package html holds the shared document chrome.
package html

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps page content in the document shell. The CSRF injector script
// runs on every page so plain POST forms pick up the token.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html><head><meta charset="utf-8"><title>`+
			templ.EscapeString(title)+
			`</title><link rel="stylesheet" href="/assets/app.css"></head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, CSRFFormScript()+`</body></html>`)
		return err
	})
}

// Toast renders the transient status or error banner carried across a
// post/redirect/get hop. Empty strings render nothing.
func Toast(status, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if status != "" {
			if _, err := io.WriteString(w, `<div class="toast toast-success">`+templ.EscapeString(status)+`</div>`); err != nil {
				return err
			}
		}
		if errorMessage != "" {
			if _, err := io.WriteString(w, `<div class="toast toast-error">`+templ.EscapeString(errorMessage)+`</div>`); err != nil {
				return err
			}
		}
		return nil
	})
}
