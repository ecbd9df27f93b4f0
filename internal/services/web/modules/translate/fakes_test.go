package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/louisbranch/translate.space/internal/services/translator"
)

type gatewayCall struct {
	apiKey  string
	request translator.Request
}

type fakeGateway struct {
	mu           sync.Mutex
	defaultModel string
	result       string
	err          error
	calls        []gatewayCall
}

func (f *fakeGateway) DefaultModel() string {
	if f.defaultModel == "" {
		return translator.DefaultModelID
	}
	return f.defaultModel
}

func (f *fakeGateway) Translate(_ context.Context, apiKey string, req translator.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, gatewayCall{apiKey: apiKey, request: req})
	return f.result, f.err
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeGateway) lastCall() gatewayCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return gatewayCall{}
	}
	return f.calls[len(f.calls)-1]
}

func mountHandler(cfg Config) http.Handler {
	mount, err := New(cfg).Mount()
	if err != nil {
		panic(err)
	}
	return mount.Handler
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
