package translator

import (
	"context"
	"strings"
)

// Resolver hands out the shared Client or a one-off Client for a request
// that supplies its own API key.
type Resolver struct {
	cfg       Config
	shared    *Client
	sharedErr error
}

// NewResolver builds the shared Client from cfg. A construction failure is
// kept and returned by Resolve for requests without an override key, so the
// service keeps serving the form.
func NewResolver(ctx context.Context, cfg Config) *Resolver {
	shared, err := New(ctx, cfg)
	return &Resolver{cfg: cfg, shared: shared, sharedErr: err}
}

// SharedErr returns the error from building the shared Client, if any.
func (r *Resolver) SharedErr() error {
	return r.sharedErr
}

// DefaultModel returns the configured default model id.
func (r *Resolver) DefaultModel() string {
	if r.shared != nil {
		return r.shared.DefaultModel()
	}
	if model, ok := LookupModel(r.cfg.DefaultModel); ok {
		return model.ID
	}
	return DefaultModelID
}

// Resolve returns a Client for one request. A non-blank override builds a
// throwaway Client; otherwise the shared Client is returned.
func (r *Resolver) Resolve(ctx context.Context, apiKeyOverride string) (*Client, error) {
	if override := strings.TrimSpace(apiKeyOverride); override != "" {
		cfg := r.cfg
		cfg.APIKey = override
		return New(ctx, cfg)
	}
	if r.sharedErr != nil {
		return nil, r.sharedErr
	}
	return r.shared, nil
}
