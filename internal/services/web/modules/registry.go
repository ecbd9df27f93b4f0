// Package modules assembles the web module groups.
package modules

import (
	"github.com/louisbranch/translate.space/internal/platform/metrics"
	module "github.com/louisbranch/translate.space/internal/services/web/module"
	"github.com/louisbranch/translate.space/internal/services/web/modules/login"
	"github.com/louisbranch/translate.space/internal/services/web/modules/logout"
	"github.com/louisbranch/translate.space/internal/services/web/modules/translate"
	"github.com/louisbranch/translate.space/internal/services/web/platform/passwordgate"
	"github.com/louisbranch/translate.space/internal/services/web/static"
	"go.uber.org/zap"
)

// Dependencies carries the collaborators shared by the web modules.
type Dependencies struct {
	Gateway translate.Gateway
	Gate    *passwordgate.Gate
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// DefaultPublicModules returns modules reachable without a session.
func DefaultPublicModules(deps Dependencies) []module.Module {
	return []module.Module{
		static.New(),
		login.New(deps.Gate, deps.Metrics, deps.Logger),
	}
}

// DefaultProtectedModules returns modules behind the password gate.
func DefaultProtectedModules(deps Dependencies) []module.Module {
	return []module.Module{
		translate.New(translate.Config{
			Gateway:    deps.Gateway,
			Metrics:    deps.Metrics,
			ShowLogout: deps.Gate.Enabled(),
		}),
		logout.New(deps.Gate),
	}
}
