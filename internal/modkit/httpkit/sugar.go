package httpkit

import (
	"net/http"

	phttp "chatlens/internal/platform/net/http"
	"chatlens/internal/platform/net/http/bind"
)

// Get registers a body-less handler under GET using the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a body-less handler under POST using the envelope adapter
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// PostJSON registers a validated JSON handler under POST. opts tune the
// binder, typically the body cap for large chat exports
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, phttp.JSONHandler(h, opts...))
}
