// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/translate.space/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/translate.space/internal/services/web/templates"
	"golang.org/x/text/language"
)

// Page describes a full-document module response.
type Page struct {
	Title      string
	StatusCode int
	ShowLogout bool
	Fragment   templ.Component
}

// WritePage renders page inside the shared layout. The document is buffered
// so a render failure never leaves a partial body behind a written status.
func WritePage(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, lang language.Tag, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	path := ""
	query := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
		query = r.URL.RawQuery
	}
	layout := webtemplates.Layout(webtemplates.PageContext{
		Lang:         lang,
		Loc:          loc,
		Title:        page.Title,
		CurrentPath:  path,
		CurrentQuery: query,
		ShowLogout:   page.ShowLogout,
	}, page.Fragment)

	var buf bytes.Buffer
	if err := layout.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
