// Package module implements the peek module
package module

import (
	"evalsnap/internal/modkit"
	"evalsnap/internal/platform/config"
	"evalsnap/internal/services/peek/domain"
	"evalsnap/internal/services/peek/service"
)

// Ports exposed by the peek module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the peek module; a positive rows override wins over EVALSNAP_PEEK_ROWS
func New(deps modkit.Deps, rows int) (*Module, error) {
	opts := FromConfig(deps.Cfg, deps.Layout)
	if rows > 0 {
		opts.Rows = rows
	}
	if err := config.Validate(opts); err != nil {
		return nil, err
	}

	runner := service.New(domain.Input{Parquet: opts.Parquet, Rows: opts.Rows}, deps.Console())
	return &Module{deps: deps, ports: Ports{Runner: runner}}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "peek" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
