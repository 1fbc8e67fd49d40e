package store

import (
	"context"

	"evalsnap/internal/platform/config"
	"evalsnap/internal/platform/logger"
)

// Config aggregates per backend configuration
type Config struct {
	Duck DuckConfig
}

// DuckConfig configures the embedded duckdb engine and tracing
type DuckConfig struct {
	Enabled bool

	// Path is the database file, empty for an in-memory database
	Path     string
	ReadOnly bool

	// Threads caps engine parallelism, 1 keeps output byte-stable across runs
	Threads int

	LogSQL      bool
	SlowQueryMs int
}

// DuckFromConfig reads EVALSNAP_DUCKDB_* knobs; Path and ReadOnly are left to the caller
func DuckFromConfig(cfg config.Conf) DuckConfig {
	c := cfg.Prefix("EVALSNAP_DUCKDB_")
	return DuckConfig{
		Enabled:     true,
		Threads:     c.MayInt("THREADS", 1),
		LogSQL:      c.MayBool("LOG_SQL", false),
		SlowQueryMs: c.MayInt("SLOW_MS", 500),
	}
}

// Opener opens an engine on a database file, "" meaning in-memory
type Opener func(ctx context.Context, path string, readOnly bool) (Engine, error)

// Opener binds c to a function that opens one engine per call; the caller owns Close
func (c DuckConfig) Opener(log logger.Logger) Opener {
	return func(ctx context.Context, path string, readOnly bool) (Engine, error) {
		dc := c
		dc.Enabled = true
		dc.Path = path
		dc.ReadOnly = readOnly
		s, err := Open(ctx, Config{Duck: dc}, WithLogger(log))
		if err != nil {
			return nil, err
		}
		return s.Duck, nil
	}
}
