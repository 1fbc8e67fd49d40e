package domain

import "context"

// RunnerPort is the external port for the convert job
type RunnerPort interface {
	Run(ctx context.Context) (Result, error)
}

// StorageRepo is the engine surface the convert service needs
type StorageRepo interface {
	// Load materializes the document as Table and returns the engine's row count
	Load(ctx context.Context, document string) (int64, error)

	// CreateEmpty creates Table with no rows for an empty document
	CreateEmpty(ctx context.Context) error

	// Stats computes the summary figures over the whole table in one query
	Stats(ctx context.Context) (Stats, error)

	// ExportParquet writes Table to path in insertion order
	ExportParquet(ctx context.Context, path string) error
}
