// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	domainerrors "github.com/louisbranch/translate.space/internal/platform/errors"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindUpstream     Kind = "upstream"
	KindNotFound     Kind = "not_found"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// LocalizationKey returns the structured localization key when available.
// Domain errors resolve to "error." followed by their lower-cased code.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return strings.TrimSpace(appErr.Key)
	}
	var domainErr *domainerrors.Error
	if stderrors.As(err, &domainErr) {
		return DomainKey(domainErr.Code)
	}
	return ""
}

// DomainKey returns the localization key for a domain error code.
func DomainKey(code domainerrors.Code) string {
	if code == "" {
		return ""
	}
	return "error." + strings.ToLower(string(code))
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return domainErrorHTTPStatus(err, http.StatusInternalServerError)
	}
	return kindHTTPStatus(appErr.Kind)
}

func kindHTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindUpstream:
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// KindOf classifies err, falling back to the domain error category.
func KindOf(err error) Kind {
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	var domainErr *domainerrors.Error
	if !stderrors.As(err, &domainErr) {
		return KindUnknown
	}
	switch domainErr.Code.Category() {
	case domainerrors.CategoryValidation:
		return KindInvalidInput
	case domainerrors.CategoryConfiguration:
		return KindUnavailable
	case domainerrors.CategoryUpstream:
		return KindUpstream
	case domainerrors.CategoryUnauthorized:
		return KindUnauthorized
	default:
		return KindUnknown
	}
}

func domainErrorHTTPStatus(err error, fallback int) int {
	kind := KindOf(err)
	if kind == KindUnknown {
		return fallback
	}
	return kindHTTPStatus(kind)
}
