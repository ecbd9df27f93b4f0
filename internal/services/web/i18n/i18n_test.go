package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "github.com/louisbranch/translate.space/internal/platform/errors"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=en-US", nil)
		req.Header.Set("Accept-Language", "ko")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ko-KR"})

		tag, persist := ResolveTag(req)
		if tag != English {
			t.Fatalf("expected en-US, got %s", tag.String())
		}
		if !persist {
			t.Fatalf("expected persist to be true")
		}
	})

	t.Run("cookie wins over accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "ko-KR")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag != English {
			t.Fatalf("expected en-US, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "en-GB, ko;q=0.5")

		tag, persist := ResolveTag(req)
		if tag != English {
			t.Fatalf("expected en-US, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("default is korean", func(t *testing.T) {
		tag, _ := ResolveTag(httptest.NewRequest(http.MethodGet, "http://example.com/", nil))
		if tag != Korean {
			t.Fatalf("expected ko-KR, got %s", tag.String())
		}
		if tag, _ := ResolveTag(nil); tag != Default() {
			t.Fatalf("nil request tag = %s", tag.String())
		}
	})
}

func TestResolveTagInvalidValues(t *testing.T) {
	t.Run("invalid query param falls back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=not-a-lang", nil)
		req.Header.Set("Accept-Language", "en")

		tag, persist := ResolveTag(req)
		if tag != English || persist {
			t.Fatalf("got %s persist=%v, want en-US from accept-language", tag.String(), persist)
		}
	})

	t.Run("unsupported cookie falls back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "fr"})

		tag, _ := ResolveTag(req)
		if tag != Default() {
			t.Fatalf("expected default, got %s", tag.String())
		}
	})
}

func TestSetLanguageCookieNilSafe(t *testing.T) {
	SetLanguageCookie(nil, Default())
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=en", nil)
	printer, tag := ResolveLocalizer(rr, req)
	if tag != English {
		t.Fatalf("tag = %s", tag.String())
	}
	if got := printer.Sprintf(KeyTranslateSubmit); got != "Translate" {
		t.Fatalf("submit label = %q", got)
	}
	cookie := rr.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, LangCookieName+"=en-US") {
		t.Fatalf("Set-Cookie = %q", cookie)
	}
}

func TestCatalogsCoverDomainErrors(t *testing.T) {
	codes := []domainerrors.Code{
		domainerrors.CodeMissingAPIKey,
		domainerrors.CodeEmptyInput,
		domainerrors.CodeSameLanguage,
		domainerrors.CodeUnsupportedLevel,
		domainerrors.CodeTranslationFailed,
		domainerrors.CodeEmptyResult,
		domainerrors.CodePasswordEmpty,
		domainerrors.CodePasswordInvalid,
	}
	for _, code := range codes {
		key := "error." + strings.ToLower(string(code))
		if _, ok := koMessages[key]; !ok {
			t.Fatalf("ko catalog missing %q", key)
		}
		if _, ok := enMessages[key]; !ok {
			t.Fatalf("en catalog missing %q", key)
		}
	}
	if got := Printer(Korean).Sprintf("error.same_language"); got != "출발어와 도착어가 동일합니다." {
		t.Fatalf("ko same-language message = %q", got)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range koMessages {
		if _, ok := enMessages[key]; !ok {
			t.Fatalf("en catalog missing %q", key)
		}
	}
	if len(koMessages) != len(enMessages) {
		t.Fatalf("catalog sizes differ: ko=%d en=%d", len(koMessages), len(enMessages))
	}
}

func TestLanguageOptions(t *testing.T) {
	options := LanguageOptions(English, "/login", "next=%2F")
	if len(options) != 2 {
		t.Fatalf("options = %v", options)
	}
	if options[0].Tag != "ko-KR" || options[0].Label != "한국어" || options[0].Active {
		t.Fatalf("korean option = %+v", options[0])
	}
	if !options[1].Active {
		t.Fatalf("english option must be active: %+v", options[1])
	}
	if options[0].URL != "/login?lang=ko-KR&next=%2F" {
		t.Fatalf("korean url = %q", options[0].URL)
	}
}
