// Package modkit provides module wiring and core deps for the batch jobs
package modkit

import (
	"io"

	"evalsnap/internal/platform/config"
	"evalsnap/internal/platform/layout"
	"evalsnap/internal/platform/logger"
	"evalsnap/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Layout layout.Layout

	// Out is the operator console for progress lines and statistics
	Out io.Writer

	// Duck carries engine knobs; modules open engines on the paths they own
	Duck store.DuckConfig
}

// Console returns Out or io.Discard when unset
func (d Deps) Console() io.Writer {
	if d.Out == nil {
		return io.Discard
	}
	return d.Out
}

// OpenEngine returns an engine opener bound to the deps' engine knobs and logger
func (d Deps) OpenEngine() store.Opener {
	return d.Duck.Opener(d.Log)
}
