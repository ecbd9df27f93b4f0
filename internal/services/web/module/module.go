// Package module defines the feature contract used by web composition.
package module

import "net/http"

// ResolveSignedIn reports whether the request carries a valid session.
type ResolveSignedIn func(*http.Request) bool

// Mount describes a module route mount. A prefix ending in "/" owns the
// subtree below it; any other prefix owns exactly that path.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
