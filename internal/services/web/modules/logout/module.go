// Package logout ends password gate sessions.
package logout

import (
	"net/http"

	module "github.com/louisbranch/translate.space/internal/services/web/module"
	"github.com/louisbranch/translate.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translate.space/internal/services/web/routepath"
)

// Gate clears the session cookie.
type Gate interface {
	SignOut(http.ResponseWriter, *http.Request)
}

// Module provides the protected logout route.
type Module struct {
	gate Gate
}

// New returns a logout module.
func New(gate Gate) Module {
	return Module{gate: gate}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "logout" }

// Mount wires the logout handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, m.handleLogout)
	return module.Mount{Prefix: routepath.Logout, Handler: mux}, nil
}

func (m Module) handleLogout(w http.ResponseWriter, r *http.Request) {
	if m.gate != nil {
		m.gate.SignOut(w, r)
	}
	httpx.WriteRedirect(w, r, routepath.Login)
}
