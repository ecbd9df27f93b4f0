package translate

import (
	"context"

	"github.com/louisbranch/translate.space/internal/services/translator"
)

// Gateway performs translations on behalf of the handlers.
type Gateway interface {
	// DefaultModel names the model unknown ids fall back to.
	DefaultModel() string
	// Translate runs req with the shared client, or with a one-off client
	// when apiKey is non-blank.
	Translate(ctx context.Context, apiKey string, req translator.Request) (string, error)
}

// NewResolverGateway adapts a translator.Resolver to Gateway.
func NewResolverGateway(resolver *translator.Resolver) Gateway {
	if resolver == nil {
		return unavailableGateway{}
	}
	return resolverGateway{resolver: resolver}
}

type resolverGateway struct {
	resolver *translator.Resolver
}

func (g resolverGateway) DefaultModel() string {
	return g.resolver.DefaultModel()
}

func (g resolverGateway) Translate(ctx context.Context, apiKey string, req translator.Request) (string, error) {
	client, err := g.resolver.Resolve(ctx, apiKey)
	if err != nil {
		return "", err
	}
	return client.Translate(ctx, req)
}

// unavailableGateway answers every call with the missing key error.
type unavailableGateway struct{}

func (unavailableGateway) DefaultModel() string { return translator.DefaultModelID }

func (unavailableGateway) Translate(context.Context, string, translator.Request) (string, error) {
	return "", translator.ErrMissingAPIKey
}
