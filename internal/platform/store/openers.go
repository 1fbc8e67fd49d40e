package store

import (
	"context"

	"evalsnap/internal/platform/store/duck"
)

// openDuck opens duckdb and wraps it with our engine adapter
func openDuck(ctx context.Context, cfg Config, s *Store) (Engine, error) {
	tracer := s.tracer
	if tracer == nil && cfg.Duck.LogSQL {
		tracer = duck.Tracer(s.Log)
	}

	d, err := duck.Open(ctx, duck.Config{
		Path:     cfg.Duck.Path,
		ReadOnly: cfg.Duck.ReadOnly,
		Threads:  cfg.Duck.Threads,
		SlowMs:   cfg.Duck.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}
	return newDuckAdapter(d), nil
}
