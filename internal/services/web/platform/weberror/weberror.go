// Package weberror renders shared error responses for web modules.
package weberror

import (
	stderrors "errors"
	"net/http"
	"strings"

	domainerrors "github.com/louisbranch/translate.space/internal/platform/errors"
	webi18n "github.com/louisbranch/translate.space/internal/services/web/i18n"
	apperrors "github.com/louisbranch/translate.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translate.space/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/translate.space/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
//
// Keyed errors are looked up in the catalog; a domain error whose key has no
// entry shows its own message, and anything else shows the status text.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	var domainErr *domainerrors.Error
	if stderrors.As(err, &domainErr) {
		if message := strings.TrimSpace(domainErr.Message); message != "" {
			return message
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized full-page error response.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, loc, lang, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// NotFound renders the error page for unmatched routes.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusNotFound)
	})
}
