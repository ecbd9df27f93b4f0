package static

import (
	"net/http"

	module "github.com/louisbranch/translate.space/internal/services/web/module"
	"github.com/louisbranch/translate.space/internal/services/web/routepath"
)

// Module serves the embedded stylesheet and scripts.
type Module struct{}

// New returns the static assets module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "static" }

// Mount serves FS under the static prefix.
func (Module) Mount() (module.Mount, error) {
	handler := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(FS))
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: handler}, nil
}
