// Package domain defines the types and ports of the peek job
package domain

import "context"

// DefaultRows is how many rows peek shows unless configured otherwise
const DefaultRows = 5

// Input names the columnar file and how many leading rows to show
type Input struct {
	Parquet string
	Rows    int
}

// Result reports the file's shape and how many rows were shown
type Result struct {
	TotalRows int64
	RowGroups int
	Columns   int
	Shown     int
}

// RunnerPort is the external port for the peek job
type RunnerPort interface {
	Run(ctx context.Context) (Result, error)
}
