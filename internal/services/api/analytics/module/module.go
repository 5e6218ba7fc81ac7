// Package module wires analytics into the API using modkit
package module

import (
	"net/http"

	"chatlens/internal/core/analyze"
	"chatlens/internal/core/emojis"
	"chatlens/internal/core/links"
	"chatlens/internal/core/stopwords"
	modkit "chatlens/internal/modkit"
	"chatlens/internal/modkit/httpkit"
	str "chatlens/internal/platform/strings"
	anhttp "chatlens/internal/services/api/analytics/http"
	ansvc "chatlens/internal/services/api/analytics/service"
)

// Module implements the analytics module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc ansvc.Service
}

// New constructs the analytics module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analytics"),
		modkit.WithPrefix("/analytics"),
	}, opts...)...)

	cfg := deps.Cfg.Prefix("ANALYZE_")
	stop := stopwords.Load(cfg.MayString("STOPWORDS_PATH", ""))
	lf := links.New()
	if cfg.MayBool("STRICT_LINKS", false) {
		// scheme-less spans like example.com stop counting as links
		lf = links.NewStrict()
	}
	agg := analyze.New(lf, emojis.New(), stop)
	svc := ansvc.New(agg)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptAnalyticsPort{svc: svc, stopwords: len(stop)}

	maxBytes := int64(cfg.MayInt("MAX_UPLOAD_BYTES", 8<<20))

	external := b.Register
	m.register = func(r httpkit.Router) {
		anhttp.Register(r, anhttp.Deps{Svc: m.svc, MaxBytes: maxBytes})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
