package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"chatlens/internal/platform/config"
	"chatlens/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice modules mount under.
// cfg tunes the slow-request threshold (HTTP_SLOW_AFTER) and the request
// timeout (HTTP_TIMEOUT). Compose with extra middleware per module as needed
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	slowAfter := cfg.MayDuration("HTTP_SLOW_AFTER", 500*time.Millisecond)
	timeout := cfg.MayDuration("HTTP_TIMEOUT", 30*time.Second)

	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// freshness: analyses recompute per request, never cache them
		middleware.NoCache(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{SlowAfter: slowAfter}),

		// cross-origin, compression, health
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}
