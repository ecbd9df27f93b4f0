package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/translate.space/internal/services/web/module"
	"github.com/louisbranch/translate.space/internal/services/web/platform/sessioncookie"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount() (module.Mount, error) {
	return m.mount, m.err
}

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: okHandler("one")}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: okHandler("two")}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "login"},
		{name: "contains surrounding whitespace", prefix: "/login "},
		{name: "wildcard", prefix: "/{id}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				PublicModules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: okHandler("bad")}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModules(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{PublicModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil public module error")
	}
	if _, err := Compose(ComposeInput{ProtectedModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil protected module error")
	}
}

func TestComposeRejectsMissingHandlerAndMountError(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{PublicModules: []module.Module{stubModule{id: "nohandler", mount: module.Mount{Prefix: "/x"}}}}); err == nil {
		t.Fatalf("expected missing handler error")
	}
	_, err := Compose(ComposeInput{PublicModules: []module.Module{stubModule{id: "broken", err: errors.New("boom")}}})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped mount error, got %v", err)
	}
}

func TestComposeRejectsGroupMismatches(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{PublicModules: []module.Module{stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: okHandler("root")}}}}); err == nil {
		t.Fatalf("expected public root subtree error")
	}
	if _, err := Compose(ComposeInput{ProtectedModules: []module.Module{stubModule{id: "login", mount: module.Mount{Prefix: "/login", Handler: okHandler("login")}}}}); err == nil {
		t.Fatalf("expected protected login error")
	}
	if _, err := Compose(ComposeInput{ProtectedModules: []module.Module{stubModule{id: "static", mount: module.Mount{Prefix: "/static/", Handler: okHandler("static")}}}}); err == nil {
		t.Fatalf("expected protected static error")
	}
}

func TestComposeRedirectsUnauthenticatedWithNext(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Authenticated:    func(*http.Request) bool { return false },
		PublicModules:    []module.Module{stubModule{id: "login", mount: module.Mount{Prefix: "/login", Handler: okHandler("login")}}},
		ProtectedModules: []module.Module{stubModule{id: "translate", mount: module.Mount{Prefix: "/", Handler: okHandler("translate")}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		path     string
		location string
	}{
		{path: "/", location: "/login"},
		{path: "/prompt-template", location: "/login?next=%2Fprompt-template"},
		{path: "/?lang=en-US", location: "/login?next=%2F%3Flang%3Den-US"},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != http.StatusFound {
			t.Fatalf("%s status = %d, want %d", tc.path, rr.Code, http.StatusFound)
		}
		if got := rr.Header().Get("Location"); got != tc.location {
			t.Fatalf("%s location = %q, want %q", tc.path, got, tc.location)
		}
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "login" {
		t.Fatalf("public login = %d %q", rr.Code, rr.Body.String())
	}
}

func TestComposeAllowsAuthenticatedAndDefaultsOpen(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		ProtectedModules: []module.Module{stubModule{id: "translate", mount: module.Mount{Prefix: "/", Handler: okHandler("translate")}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "translate" {
		t.Fatalf("open gate = %d %q", rr.Code, rr.Body.String())
	}
}

func TestComposeRejectsCrossOriginCookieMutation(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Authenticated:    func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{stubModule{id: "translate", mount: module.Mount{Prefix: "/", Handler: okHandler("translate")}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		name   string
		method string
		cookie bool
		origin string
		want   int
	}{
		{name: "get with cookie", method: http.MethodGet, cookie: true, want: http.StatusOK},
		{name: "post without cookie", method: http.MethodPost, want: http.StatusOK},
		{name: "post same origin", method: http.MethodPost, cookie: true, origin: "http://example.com", want: http.StatusOK},
		{name: "post https origin behind proxy", method: http.MethodPost, cookie: true, origin: "https://example.com", want: http.StatusOK},
		{name: "post cross origin", method: http.MethodPost, cookie: true, origin: "https://evil.example", want: http.StatusForbidden},
		{name: "post missing proof", method: http.MethodPost, cookie: true, want: http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, "/", nil)
			if tc.cookie {
				req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "token"})
			}
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}
