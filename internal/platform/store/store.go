// Package store provides the facade over the embedded analytical engine
package store

import (
	"context"
	"errors"
	"fmt"

	"evalsnap/internal/platform/logger"
	"evalsnap/internal/platform/store/duck"
)

// Store is the facade for the engine backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// Duck is the duckdb engine seam, nil when disabled
	Duck Engine

	tracer duck.QueryTracer
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Format names a file format the engine can write
type Format string

// Formats understood by Engine.Export
const (
	FormatParquet Format = "PARQUET"
	FormatCSV     Format = "CSV"
)

// Engine is the analytical engine seam: sql plus bulk file load and export
type Engine interface {
	TxRunner

	// LoadNDJSON creates table from a newline-delimited JSON file and returns its row count
	LoadNDJSON(ctx context.Context, table, path string) (int64, error)

	// Export writes the whole table to path in the given format
	Export(ctx context.Context, table string, format Format, path string) error

	// HasTable reports whether table exists in the main schema
	HasTable(ctx context.Context, table string) (bool, error)

	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Logger()

	if cfg.Duck.Enabled {
		d, err := openDuck(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.Duck = d
	}

	return s, nil
}

// Guard verifies all configured seams the Store knows about
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.Duck != nil {
		if p, ok := any(s.Duck).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("duckdb: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends gracefully
// nil backends are ignored
func (s *Store) Close(_ context.Context) error {
	if s == nil || s.Duck == nil {
		return nil
	}
	return s.Duck.Close()
}
