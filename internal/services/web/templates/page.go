package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/translate.space/internal/services/web/i18n"
	routepath "github.com/louisbranch/translate.space/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         language.Tag
	Loc          Localizer
	Title        string
	CurrentPath  string
	CurrentQuery string
	// ShowLogout renders the sign-out control in the header.
	ShowLogout bool
}

// Layout renders the document shell around body.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		appTitle := T(page.Loc, webi18n.KeyAppTitle)
		title := appTitle
		if page.Title != "" && page.Title != appTitle {
			title = page.Title + " | " + appTitle
		}

		h := &htmlWriter{w: w}
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", page.Lang.String())
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet" href="`, routepath.StaticPrefix, `app.css"></head><body>`)

		h.raw(`<header class="app-header"><h1><a href="`, routepath.Root, `">`)
		h.text(appTitle)
		h.raw("</a></h1><nav>")
		for _, option := range webi18n.LanguageOptions(page.Lang, page.CurrentPath, page.CurrentQuery) {
			h.raw("<a")
			h.attr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.attr("class", "active")
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a>")
		}
		if page.ShowLogout {
			h.raw(`<form method="post"`)
			h.attr("action", routepath.Logout)
			h.raw(`><button type="submit" class="link">`)
			h.text(T(page.Loc, webi18n.KeyLogout))
			h.raw("</button></form>")
		}
		h.raw("</nav></header><main>")
		if h.err != nil {
			return h.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</main><script src="`, routepath.StaticPrefix, `app.js" defer></script></body></html>`)
		return h.err
	})
}
