// Package module implements the expand module
package module

import (
	"evalsnap/internal/modkit"
	"evalsnap/internal/platform/config"
	"evalsnap/internal/services/expand/domain"
	"evalsnap/internal/services/expand/service"
)

// Ports exposed by the expand module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the expand module from deps and EVALSNAP_EXPAND_* config
func New(deps modkit.Deps) (*Module, error) {
	opts := FromConfig(deps.Cfg, deps.Layout)
	if err := config.Validate(opts); err != nil {
		return nil, err
	}

	runner := service.New(domain.Input{Archive: opts.Archive, Output: opts.Output}, deps.Console())
	return &Module{deps: deps, ports: Ports{Runner: runner}}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "expand" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
