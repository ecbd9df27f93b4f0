package translate

import (
	"errors"
	"net/http"
	"strings"

	domainerrors "github.com/louisbranch/translate.space/internal/platform/errors"
	"github.com/louisbranch/translate.space/internal/services/translator"
	webi18n "github.com/louisbranch/translate.space/internal/services/web/i18n"
	apperrors "github.com/louisbranch/translate.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translate.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translate.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/translate.space/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/translate.space/internal/services/web/templates"
	"golang.org/x/text/language"
)

type handlers struct {
	service    service
	showLogout bool
}

func newHandlers(s service, showLogout bool) handlers {
	return handlers{service: s, showLogout: showLogout}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	view := h.formView(h.service.defaultRequest(), loc)
	h.writePage(w, r, loc, lang, http.StatusOK, view)
}

func (h handlers) handleTranslate(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	sub := h.service.parseSubmission(r)
	view := h.formView(sub.request, loc)

	translated, err := h.service.translate(r.Context(), sub)
	if err != nil {
		view.Error = failureMessage(loc, err)
		h.writePage(w, r, loc, lang, apperrors.HTTPStatus(err), view)
		return
	}
	view.Translation = translated
	h.writePage(w, r, loc, lang, http.StatusOK, view)
}

// failureMessage shows the translator's own message as is. Errors without one
// fall back to the localized public message.
func failureMessage(loc webtemplates.Localizer, err error) string {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		if message := strings.TrimSpace(domainErr.Message); message != "" {
			return message
		}
	}
	return weberror.PublicMessage(loc, err)
}

func (h handlers) handlePromptTemplate(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"promptTemplate": translator.DefaultPromptTemplate})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, lang language.Tag, status int, view webtemplates.TranslateFormView) {
	err := pagerender.WritePage(w, r, loc, lang, pagerender.Page{
		Title:      webtemplates.T(loc, webi18n.KeyTranslateHeading),
		StatusCode: status,
		ShowLogout: h.showLogout,
		Fragment:   webtemplates.TranslatePage(view, loc),
	})
	if err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

// formView maps a request onto the page. The API key is never carried over.
func (h handlers) formView(req translator.Request, loc webtemplates.Localizer) webtemplates.TranslateFormView {
	prompt := req.PromptTemplate
	if prompt == "" {
		prompt = translator.DefaultPromptTemplate
	}
	return webtemplates.TranslateFormView{
		Text:           req.Text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Model:          req.Model,
		Level:          string(req.Level),
		PromptTemplate: prompt,
		Languages:      languageOptions(),
		Models:         modelOptions(),
		Levels:         levelOptions(loc),
		TargetLabel:    translator.LanguageLabel(req.TargetLanguage),
	}
}

func languageOptions() []webtemplates.Option {
	langs := translator.Languages()
	out := make([]webtemplates.Option, 0, len(langs))
	for _, lang := range langs {
		out = append(out, webtemplates.Option{Value: lang.Code, Label: lang.Label})
	}
	return out
}

func modelOptions() []webtemplates.Option {
	models := translator.Models()
	out := make([]webtemplates.Option, 0, len(models))
	for _, model := range models {
		out = append(out, webtemplates.Option{Value: model.ID, Label: model.Label})
	}
	return out
}

var levelKeys = map[translator.Level]string{
	translator.LevelMinimal: webi18n.KeyLevelMinimal,
	translator.LevelLow:     webi18n.KeyLevelLow,
	translator.LevelHigh:    webi18n.KeyLevelHigh,
}

func levelOptions(loc webtemplates.Localizer) []webtemplates.Option {
	levels := translator.Levels()
	out := make([]webtemplates.Option, 0, len(levels))
	for _, level := range levels {
		label := string(level)
		if key, ok := levelKeys[level]; ok {
			label = webtemplates.T(loc, key)
		}
		out = append(out, webtemplates.Option{Value: string(level), Label: label})
	}
	return out
}
