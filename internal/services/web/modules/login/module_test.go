package login

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/translate.space/internal/platform/metrics"
	"github.com/louisbranch/translate.space/internal/services/web/platform/passwordgate"
	"github.com/louisbranch/translate.space/internal/services/web/platform/sessioncookie"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newGate(t *testing.T, password string) *passwordgate.Gate {
	t.Helper()
	gate, err := passwordgate.New(passwordgate.Config{Password: password, Secret: []byte("test-secret")})
	if err != nil {
		t.Fatalf("passwordgate.New() error = %v", err)
	}
	return gate
}

func mountHandler(t *testing.T, gate Gate, m *metrics.Metrics) http.Handler {
	t.Helper()
	mount, err := New(gate, m, nil).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/login" {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func postLogin(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.Name {
			return cookie
		}
	}
	return nil
}

func TestLoginRedirectsHomeWhenGateDisabled(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, newGate(t, ""), nil)
	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/login", nil),
		postLogin(url.Values{"password": {"anything"}}),
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/" {
			t.Fatalf("%s = %d %q", req.Method, rr.Code, rr.Header().Get("Location"))
		}
	}
}

func TestLoginFormCarriesNext(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, newGate(t, "secret"), nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login?next=%2Fprompt-template", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `name="next" value="/prompt-template"`) {
		t.Fatalf("body missing next field: %s", body)
	}
	if strings.Contains(body, `action="/logout"`) {
		t.Fatalf("logout shown on login page")
	}
}

func TestLoginFormDropsUnsafeNext(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, newGate(t, "secret"), nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login?next=https%3A%2F%2Fevil.example", nil))
	if strings.Contains(rr.Body.String(), `name="next"`) {
		t.Fatalf("unsafe next rendered")
	}
}

func TestLoginSuccessSetsCookieAndRedirects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		next     string
		location string
	}{
		{name: "default", next: "", location: "/"},
		{name: "relative next", next: "/?lang=en-US", location: "/?lang=en-US"},
		{name: "absolute next", next: "https://evil.example/", location: "/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gate := newGate(t, "secret")
			h := mountHandler(t, gate, nil)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, postLogin(url.Values{"password": {"secret"}, "next": {tc.next}}))

			if rr.Code != http.StatusFound {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
			}
			if got := rr.Header().Get("Location"); got != tc.location {
				t.Fatalf("location = %q, want %q", got, tc.location)
			}
			cookie := sessionCookie(rr)
			if cookie == nil {
				t.Fatalf("session cookie not set")
			}
			if err := gate.Verify(cookie.Value); err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
		})
	}
}

func TestLoginRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		status   int
		want     string
	}{
		{name: "empty", password: "", status: http.StatusBadRequest, want: "비밀번호를 입력해주세요."},
		{name: "wrong", password: "Secret", status: http.StatusUnauthorized, want: "비밀번호가 올바르지 않습니다."},
		{name: "padded", password: " secret", status: http.StatusUnauthorized, want: "비밀번호가 올바르지 않습니다."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := mountHandler(t, newGate(t, "secret"), nil)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, postLogin(url.Values{"password": {tc.password}, "next": {"/prompt-template"}}))

			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			body := rr.Body.String()
			if !strings.Contains(body, tc.want) {
				t.Fatalf("body missing %q", tc.want)
			}
			if !strings.Contains(body, `name="next" value="/prompt-template"`) {
				t.Fatalf("next not preserved")
			}
			if sessionCookie(rr) != nil {
				t.Fatalf("session cookie set on rejection")
			}
		})
	}
}

func TestLoginLocalizesErrorsInEnglish(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, newGate(t, "secret"), nil)
	req := postLogin(url.Values{"password": {"nope"}})
	req.Header.Set("Accept-Language", "en-US")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if strings.Contains(rr.Body.String(), "비밀번호가 올바르지 않습니다.") {
		t.Fatalf("expected english copy")
	}
}

func TestLoginRedirectsAuthenticatedViewer(t *testing.T) {
	t.Parallel()

	gate := newGate(t, "secret")
	token, err := gate.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	h := mountHandler(t, gate, nil)
	req := httptest.NewRequest(http.MethodGet, "/login?next=%2Fprompt-template", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: token})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/prompt-template" {
		t.Fatalf("authenticated login = %d %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestLoginRecordsAttempts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	h := mountHandler(t, newGate(t, "secret"), metrics.NewWithRegistry(reg))
	for _, password := range []string{"", "bad", "secret"} {
		h.ServeHTTP(httptest.NewRecorder(), postLogin(url.Values{"password": {password}}))
	}

	expected := `
# HELP translator_login_attempts_total Password gate login attempts by result.
# TYPE translator_login_attempts_total counter
translator_login_attempts_total{result="empty"} 1
translator_login_attempts_total{result="rejected"} 1
translator_login_attempts_total{result="success"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "translator_login_attempts_total"); err != nil {
		t.Fatalf("metrics mismatch: %v", err)
	}
}
