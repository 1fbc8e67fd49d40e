// Package duck provides an embedded DuckDB client over database/sql with optional query tracing
package duck

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net/url"

	perr "evalsnap/internal/platform/errors"

	"github.com/marcboeker/go-duckdb"
)

// Config configures the duckdb database
type Config struct {
	// Path is the database file, empty for in-memory
	Path     string
	ReadOnly bool
	Threads  int
	SlowMs   int
}

// Duck is a duckdb client with a single-connection pool and optional tracer
type Duck struct {
	DB     *sql.DB
	Tracer QueryTracer
	SlowMs int

	conn *duckdb.Connector
}

var newConnector = duckdb.NewConnector

// DSN renders the connector string for cfg
func DSN(cfg Config) string {
	q := url.Values{}
	if cfg.ReadOnly && cfg.Path != "" {
		q.Set("access_mode", "READ_ONLY")
	}
	if len(q) == 0 {
		return cfg.Path
	}
	return cfg.Path + "?" + q.Encode()
}

// initStatements run on every new physical connection
func initStatements(cfg Config) []string {
	threads := cfg.Threads
	if threads <= 0 {
		threads = 1
	}
	return []string{
		fmt.Sprintf("SET threads TO %d", threads),
		"SET preserve_insertion_order TO true",
	}
}

// Open creates a new Duck client with the given config and optional tracer
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*Duck, error) {
	stmts := initStatements(cfg)
	c, err := newConnector(DSN(cfg), func(execer driver.ExecerContext) error {
		for _, s := range stmts {
			if _, err := execer.ExecContext(context.Background(), s, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeQuery, "open duckdb %q", cfg.Path)
	}

	db := sql.OpenDB(c)
	// one connection keeps temp objects and in-memory tables visible to every statement
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = c.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeQuery, "ping duckdb %q", cfg.Path)
	}

	return &Duck{
		DB:     db,
		Tracer: tracer,
		SlowMs: cfg.SlowMs,
		conn:   c,
	}, nil
}

// Close closes the pool and the underlying database
func (d *Duck) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	err := d.DB.Close()
	if d.conn != nil {
		if cerr := d.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
