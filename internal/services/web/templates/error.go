package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/translate.space/internal/services/web/i18n"
	routepath "github.com/louisbranch/translate.space/internal/services/web/routepath"
)

// ErrorPageTitle returns the browser page title for app error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, webi18n.KeyErrorPageNotFound)
	}
	return T(loc, webi18n.KeyErrorPageServer)
}

// ErrorState renders the body of an app error page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="card"><h2>`)
		h.text(ErrorPageTitle(statusCode, loc))
		h.raw(`</h2><p><a href="`, routepath.Root, `">`)
		h.text(T(loc, webi18n.KeyErrorPageBackToHome))
		h.raw("</a></p></section>")
		return h.err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
