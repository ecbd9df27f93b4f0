// Package login serves the password gate form.
package login

import (
	"net/http"

	"github.com/louisbranch/translate.space/internal/platform/metrics"
	module "github.com/louisbranch/translate.space/internal/services/web/module"
	"github.com/louisbranch/translate.space/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Gate is the password gate contract used by the login routes.
type Gate interface {
	Enabled() bool
	Authenticated(*http.Request) bool
	CheckPassword(string) error
	SignIn(http.ResponseWriter, *http.Request) error
}

// Module provides the public login routes.
type Module struct {
	gate    Gate
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// New returns a login module.
func New(gate Gate, m *metrics.Metrics, logger *zap.Logger) Module {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Module{gate: gate, metrics: m, logger: logger}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "login" }

// Mount wires login route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.gate, m.metrics, m.logger))
	return module.Mount{Prefix: routepath.Login, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleSubmit)
}
