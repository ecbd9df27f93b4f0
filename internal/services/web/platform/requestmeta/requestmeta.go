// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request metadata resolves request scheme.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// Scheme resolves the request scheme, "http" or "https".
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch scheme := strings.ToLower(r.URL.Scheme); scheme {
		case "http", "https":
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// HasSameOriginProofWithPolicy reports whether Origin, or Referer when Origin
// is absent, names the request's own scheme, host and port.
//
// When the scheme cannot be trusted (plain http without forwarded-proto
// trust) an https proof for the same host also matches, since a
// TLS-terminating proxy hides the browser's scheme.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	self := origin{scheme: Scheme(r, policy)}
	self.host, self.port = splitHost(r.Host, self.scheme)
	if self.host == "" {
		return false
	}
	raw := strings.TrimSpace(r.Header.Get("Origin"))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if raw == "" {
		return false
	}
	claimed, ok := parseOrigin(raw)
	if !ok {
		return false
	}
	if claimed == self {
		return true
	}
	return schemeHidden(r, policy, self) && claimed.scheme == "https" && claimed.host == self.host &&
		(claimed.port == self.port || claimed.port == defaultPort("https"))
}

func schemeHidden(r *http.Request, policy SchemePolicy, self origin) bool {
	return !policy.TrustForwardedProto && r.TLS == nil && self.scheme == "http"
}

type origin struct {
	scheme string
	host   string
	port   string
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return origin{}, false
	}
	o := origin{scheme: strings.ToLower(parsed.Scheme)}
	o.host, o.port = splitHost(parsed.Host, o.scheme)
	if o.host == "" || o.port == "" {
		return origin{}, false
	}
	return o, true
}

func splitHost(rawHost string, scheme string) (string, string) {
	rawHost = strings.TrimSpace(rawHost)
	host, port, err := net.SplitHostPort(rawHost)
	if err != nil {
		host, port = rawHost, ""
	}
	host = strings.ToLower(strings.Trim(host, "[]"))
	if port == "" {
		port = defaultPort(scheme)
	}
	return host, port
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}
