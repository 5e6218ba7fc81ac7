// Package api provides the HTTP API for the application
package api

import (
	"chatlens/internal/platform/config"
	"chatlens/internal/platform/logger"
	phttp "chatlens/internal/platform/net/http"

	"chatlens/internal/modkit"
	"chatlens/internal/modkit/httpkit"
	"chatlens/internal/modkit/module"
	"chatlens/internal/modkit/swaggerkit"

	analyticsmod "chatlens/internal/services/api/analytics/module"
	metamod "chatlens/internal/services/api/meta/module"
	transcriptsmod "chatlens/internal/services/api/transcripts/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
	}

	mods := []module.Module{
		metamod.New(deps),
		transcriptsmod.New(deps),
		analyticsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config.Prefix("CORE_API_")), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		// register every module's ports before any routes mount, so
		// cross-module lookups resolve regardless of mount order
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
		}

		for _, m := range mods {
			// mount module routes under its Prefix()
			m.MountRoutes(api)
			deps.Logger().Debug().Str("module", m.Name()).Msg("mounted")
		}
	})
}
