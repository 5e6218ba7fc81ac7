// Package module wires transcripts into the API using modkit
package module

import (
	"net/http"

	modkit "chatlens/internal/modkit"
	"chatlens/internal/modkit/httpkit"
	str "chatlens/internal/platform/strings"
	transhttp "chatlens/internal/services/api/transcripts/http"
	transsvc "chatlens/internal/services/api/transcripts/service"
)

// Module implements the transcripts module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc transsvc.Service
}

// New constructs the transcripts module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("transcripts"),
		modkit.WithPrefix("/transcripts"),
	}, opts...)...)

	svc := transsvc.New()

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptTranscriptsPort{svc: svc}

	maxBytes := int64(deps.Cfg.Prefix("ANALYZE_").MayInt("MAX_UPLOAD_BYTES", 8<<20))

	external := b.Register
	m.register = func(r httpkit.Router) {
		transhttp.Register(r, transhttp.Deps{Svc: m.svc, MaxBytes: maxBytes})
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
