// Package module defines the minimal module contract and the port registry
// used to share module capabilities during bootstrap
package module

import (
	phttp "chatlens/internal/platform/net/http"
)

// Module is the contract the API composer works against.
// A sibling of modkit.Module so a module can also export its own port types
// without import knots
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
