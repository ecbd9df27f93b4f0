package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/translate.space/internal/services/web/i18n"
	routepath "github.com/louisbranch/translate.space/internal/services/web/routepath"
)

// LoginView holds password form state.
type LoginView struct {
	Next  string
	Error string
}

// LoginPage renders the password gate form.
func LoginPage(view LoginView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="card narrow"><h2>`)
		h.text(T(loc, webi18n.KeyLoginTitle))
		h.raw("</h2><p>")
		h.text(T(loc, webi18n.KeyLoginHeading))
		h.raw(`</p><form method="post"`)
		h.attr("action", routepath.Login)
		h.raw(">")
		if view.Next != "" {
			h.raw(`<input type="hidden"`)
			h.attr("name", routepath.NextQueryKey)
			h.attr("value", view.Next)
			h.raw(">")
		}
		h.raw(`<label for="password">`)
		h.text(T(loc, webi18n.KeyLoginPassword))
		h.raw(`</label><input type="password" id="password" name="password" autocomplete="current-password" autofocus>`)
		h.raw(`<button type="submit" class="primary">`)
		h.text(T(loc, webi18n.KeyLoginSubmit))
		h.raw("</button></form>")
		h.errorMessage(view.Error)
		h.raw("</section>")
		return h.err
	})
}
