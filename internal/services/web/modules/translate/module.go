// Package translate serves the translation form and its JSON helpers.
package translate

import (
	"net/http"

	"github.com/louisbranch/translate.space/internal/platform/metrics"
	module "github.com/louisbranch/translate.space/internal/services/web/module"
	"github.com/louisbranch/translate.space/internal/services/web/routepath"
)

// Config wires the module to its collaborators.
type Config struct {
	Gateway Gateway
	Metrics *metrics.Metrics
	// ShowLogout renders the sign-out control, set when the password gate
	// is enabled.
	ShowLogout bool
}

// Module provides the protected translation routes at the site root.
type Module struct {
	cfg Config
}

// New returns a translate module.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "translate" }

// Mount wires translate route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.cfg.Gateway, m.cfg.Metrics), m.cfg.ShowLogout)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
