package domain

import "context"

// RunnerPort is the external port for the expand job
type RunnerPort interface {
	Run(ctx context.Context) (Result, error)
}
