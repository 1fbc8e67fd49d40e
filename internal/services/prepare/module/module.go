// Package module implements the prepare module
package module

import (
	"evalsnap/internal/modkit"
	"evalsnap/internal/platform/config"
	"evalsnap/internal/services/prepare/domain"
	"evalsnap/internal/services/prepare/repo"
	"evalsnap/internal/services/prepare/service"
)

// Ports exposed by the prepare module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the prepare module from deps and EVALSNAP_PREPARE_* config
func New(deps modkit.Deps) (*Module, error) {
	opts := FromConfig(deps.Cfg, deps.Layout)
	if err := config.Validate(opts); err != nil {
		return nil, err
	}

	runner := service.New(
		domain.Input{
			Document:      opts.Document,
			QuestionFiles: opts.QuestionFiles,
			PriceCSV:      opts.PriceCSV,
			Database:      opts.Database,
		},
		deps.OpenEngine(),
		repo.NewDuck(),
		deps.Console(),
	)
	return &Module{deps: deps, ports: Ports{Runner: runner}}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "prepare" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
