// Package module implements the export module
package module

import (
	"evalsnap/internal/modkit"
	"evalsnap/internal/platform/config"
	"evalsnap/internal/services/export/domain"
	"evalsnap/internal/services/export/repo"
	"evalsnap/internal/services/export/service"
)

// Ports exposed by the export module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the export module; overrides win over EVALSNAP_EXPORT_* config
func New(deps modkit.Deps, overrides Options) (*Module, error) {
	opts := FromConfig(deps.Cfg, deps.Layout)
	if overrides.Source != "" {
		opts.Source = overrides.Source
	}
	if overrides.Output != "" {
		opts.Output = overrides.Output
	}
	if err := config.Validate(opts); err != nil {
		return nil, err
	}

	src := domain.SourceTable
	if opts.Source == "parquet" {
		src = domain.SourceParquet
	}
	runner := service.New(
		domain.Input{Source: src, Database: opts.Database, Parquet: opts.Parquet, Output: opts.Output},
		deps.OpenEngine(),
		repo.NewDuck(),
		deps.Console(),
	)
	return &Module{deps: deps, ports: Ports{Runner: runner}}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "export" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
