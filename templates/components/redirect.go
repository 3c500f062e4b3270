package components

import (
	"context"
	"io"

	"retailnexa_site/middleware"

	"github.com/a-h/templ"
)

// MailtoRedirect hands the browser to the mail client as soon as the page loads.
func MailtoRedirect(href string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		target, err := templ.JSONString(href)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `<script nonce="`+templ.EscapeString(middleware.GetNonce(ctx))+`">window.location.href = `+target+`;</script>`)
		return err
	})
}
