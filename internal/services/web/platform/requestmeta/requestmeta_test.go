package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSchemeHonorsForwardedProtoOnlyWhenTrusted(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	if IsHTTPSWithPolicy(req, SchemePolicy{}) {
		t.Fatal("untrusted forwarded proto must be ignored")
	}
	if !IsHTTPSWithPolicy(req, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("trusted forwarded proto must be honored")
	}
}

func TestSchemeUsesTLS(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	if Scheme(req, SchemePolicy{}) != "https" {
		t.Fatal("expected https for TLS request")
	}
	if Scheme(nil, SchemePolicy{}) != "" {
		t.Fatal("expected empty scheme for nil request")
	}
}

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		host      string
		origin    string
		referer   string
		forwarded string
		trust     bool
		want      bool
	}{
		{name: "matching origin", host: "translate.local:5000", origin: "http://translate.local:5000", want: true},
		{name: "default port", host: "translate.local", origin: "http://translate.local", want: true},
		{name: "explicit default port", host: "translate.local", origin: "http://translate.local:80", want: true},
		{name: "other host", host: "translate.local", origin: "http://evil.example", want: false},
		{name: "other port", host: "translate.local:5000", origin: "http://translate.local:5001", want: false},
		{name: "https behind untrusted proxy", host: "translate.local", origin: "https://translate.local", want: true},
		{name: "https behind untrusted proxy other host", host: "translate.local", origin: "https://evil.example", want: false},
		{name: "https other port", host: "translate.local:5000", origin: "https://translate.local:5001", want: false},
		{name: "trusted proto mismatch", host: "translate.local", origin: "https://translate.local", forwarded: "http", trust: true, want: false},
		{name: "trusted proto match", host: "translate.local", origin: "https://translate.local", forwarded: "https", trust: true, want: true},
		{name: "http origin on trusted https", host: "translate.local", origin: "http://translate.local", forwarded: "https", trust: true, want: false},
		{name: "referer fallback", host: "translate.local", referer: "http://translate.local/login?next=%2F", want: true},
		{name: "origin wins over referer", host: "translate.local", origin: "http://evil.example", referer: "http://translate.local/", want: false},
		{name: "no proof", host: "translate.local", want: false},
		{name: "opaque origin", host: "translate.local", origin: "null", want: false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Host = tc.host
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		if tc.referer != "" {
			req.Header.Set("Referer", tc.referer)
		}
		if tc.forwarded != "" {
			req.Header.Set("X-Forwarded-Proto", tc.forwarded)
		}
		if got := HasSameOriginProofWithPolicy(req, SchemePolicy{TrustForwardedProto: tc.trust}); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
