package middleware

import (
	"net/http"
	"time"

	"chatlens/internal/platform/logger"
)

// AccessLogOptions configures the structured access log
type AccessLogOptions struct {
	// SlowAfter raises the log level to warn for requests that take at
	// least this long. Zero disables the slow marking
	SlowAfter time.Duration
}

// statusWriter wraps the ResponseWriter to record status and bytes written
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	if n > 0 {
		sw.bytes += n
	}
	return n, err
}

// AccessLog emits one structured line per request with method, path, status,
// elapsed time and bytes written, using the request scoped logger
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if opt.SlowAfter > 0 && elapsed >= opt.SlowAfter {
				evt = log.Warn()
			}
			evt.Int("status", sw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", sw.bytes).
				Msg("request done")
		})
	}
}
