package domain

import (
	"context"
	"encoding/json"
)

// RunnerPort is the external port for the export job
type RunnerPort interface {
	Run(ctx context.Context) (Result, error)
}

// StorageRepo reads the first records of a source as json objects
type StorageRepo interface {
	HasTable(ctx context.Context, table string) (bool, error)

	// FirstOfTable returns up to n rows of table ordered by rowid
	FirstOfTable(ctx context.Context, table string, n int) ([]json.RawMessage, error)

	// FirstOfParquet returns up to n rows of the file ordered by file row number
	FirstOfParquet(ctx context.Context, path string, n int) ([]json.RawMessage, error)
}
