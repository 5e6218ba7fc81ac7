package http

import (
	"net/http"

	"chatlens/internal/platform/net/http/bind"
)

// JSONHandler adapts a pure JSON handler to a platform Handler. The body is
// bound and validated before fn runs; opts tune the binder (body cap etc)
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
