// @title         Chatlens API
// @version       0.1.0
// @description   Parse and analyze exported chat transcripts

package main

import (
	"context"

	"chatlens/internal/platform/config"
	"chatlens/internal/platform/logger"
	phttp "chatlens/internal/platform/net/http"

	"chatlens/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API; modules read their own prefixes off the root view
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
