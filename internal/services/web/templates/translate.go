package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/translate.space/internal/services/web/i18n"
	routepath "github.com/louisbranch/translate.space/internal/services/web/routepath"
)

// TranslateFormView holds the translate form state for one render.
// The API key is intentionally absent so it is never echoed back.
type TranslateFormView struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	Model          string
	Level          string
	PromptTemplate string

	Languages []Option
	Models    []Option
	Levels    []Option

	Translation string
	TargetLabel string
	Error       string
}

// TranslatePage renders the translation form and the last result or error.
func TranslatePage(view TranslateFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="card"><h2>`)
		h.text(T(loc, webi18n.KeyTranslateHeading))
		h.raw(`</h2><form method="post" class="translate-form"`)
		h.attr("action", routepath.Root)
		h.raw(">")

		h.raw(`<div class="language-row"><label for="source_language">`)
		h.text(T(loc, webi18n.KeyTranslateSource))
		h.raw("</label>")
		h.selectControl("source_language", "source_language", view.Languages, view.SourceLanguage)
		h.raw(`<button type="button" class="secondary" data-action="swap-languages" data-source="source_language" data-target="target_language">`)
		h.text(T(loc, webi18n.KeyTranslateSwap))
		h.raw(`</button><label for="target_language">`)
		h.text(T(loc, webi18n.KeyTranslateTarget))
		h.raw("</label>")
		h.selectControl("target_language", "target_language", view.Languages, view.TargetLanguage)
		h.raw("</div>")

		h.raw(`<label for="text">`)
		h.text(T(loc, webi18n.KeyTranslateText))
		h.raw("</label><textarea")
		h.attr("id", "text")
		h.attr("name", "text")
		h.attr("rows", "8")
		h.attr("placeholder", T(loc, webi18n.KeyTranslateTextHint))
		h.raw(">")
		h.text(view.Text)
		h.raw("</textarea>")

		h.raw(`<div class="model-row"><label for="model">`)
		h.text(T(loc, webi18n.KeyTranslateModel))
		h.raw("</label>")
		h.selectControl("model", "model", view.Models, view.Model)
		h.raw(`<label for="level">`)
		h.text(T(loc, webi18n.KeyTranslateLevel))
		h.raw("</label>")
		h.selectControl("level", "level", view.Levels, view.Level)
		h.raw(`<small class="hint">`)
		h.text(T(loc, webi18n.KeyTranslateLevelHint))
		h.raw("</small></div>")

		h.raw("<details><summary>")
		h.text(T(loc, webi18n.KeyTranslateAdvanced))
		h.raw(`</summary><label for="api_key">`)
		h.text(T(loc, webi18n.KeyTranslateAPIKey))
		h.raw(`</label><input type="password" id="api_key" name="api_key" autocomplete="off" value=""`)
		h.attr("placeholder", T(loc, webi18n.KeyTranslateAPIKeyHint))
		h.raw(`><label for="prompt_template">`)
		h.text(T(loc, webi18n.KeyTranslatePrompt))
		h.raw(`</label><textarea id="prompt_template" name="prompt_template" rows="10">`)
		h.text(view.PromptTemplate)
		h.raw(`</textarea><button type="button" class="secondary" data-action="reset-prompt" data-target="prompt_template"`)
		h.attr("data-source", routepath.PromptTemplate)
		h.raw(">")
		h.text(T(loc, webi18n.KeyTranslatePromptReset))
		h.raw("</button></details>")

		h.raw(`<button type="submit" class="primary">`)
		h.text(T(loc, webi18n.KeyTranslateSubmit))
		h.raw("</button></form>")

		h.errorMessage(view.Error)
		if view.Translation != "" {
			h.raw(`<section class="result"><h3>`)
			h.text(T(loc, webi18n.KeyTranslateResultHeading, view.TargetLabel))
			h.raw(`</h3><pre class="translation">`)
			h.text(view.Translation)
			h.raw("</pre></section>")
		}
		h.raw("</section>")
		return h.err
	})
}
