// Package modkit provides module wiring and core deps
package modkit

import (
	"chatlens/internal/platform/config"
	"chatlens/internal/platform/logger"
)

// Deps holds core dependencies passed to modules.
// Wiring only; modules derive their own scoped views from these
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns the injected logger, falling back to the process root so a
// zero-value Deps stays usable in tests
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
