// Package module implements the convert module
package module

import (
	"evalsnap/internal/modkit"
	"evalsnap/internal/platform/config"
	"evalsnap/internal/services/convert/domain"
	"evalsnap/internal/services/convert/repo"
	"evalsnap/internal/services/convert/service"
)

// Ports exposed by the convert module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the convert module from deps and EVALSNAP_CONVERT_* config
func New(deps modkit.Deps) (*Module, error) {
	opts := FromConfig(deps.Cfg, deps.Layout, deps.Duck.Threads)
	if err := config.Validate(opts); err != nil {
		return nil, err
	}

	runner := service.New(
		domain.Input{Document: opts.Document, Parquet: opts.Parquet},
		deps.OpenEngine(),
		repo.New,
		deps.Console(),
	)
	return &Module{deps: deps, ports: Ports{Runner: runner}}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "convert" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
