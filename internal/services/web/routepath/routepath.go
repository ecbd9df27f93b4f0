// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root           = "/"
	RootExact      = "/{$}"
	Login          = "/login"
	Logout         = "/logout"
	PromptTemplate = "/prompt-template"
	StaticPrefix   = "/static/"
	Metrics        = "/metrics"

	// NextQueryKey carries the path to resume after login.
	NextQueryKey = "next"
)

// LoginWithNext returns the login route that resumes at next afterwards.
func LoginWithNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || next == Root {
		return Login
	}
	return Login + "?" + url.Values{NextQueryKey: []string{next}}.Encode()
}

// SafeNext returns raw when it is a same-site relative path, else Root.
func SafeNext(raw string) string {
	next := strings.TrimSpace(raw)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return Root
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" || parsed.Path == "" {
		return Root
	}
	if parsed.Path == Login {
		return Root
	}
	if parsed.RawQuery != "" {
		return parsed.Path + "?" + parsed.RawQuery
	}
	return parsed.Path
}
