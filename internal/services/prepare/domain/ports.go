package domain

import "context"

// RunnerPort is the external port for the prepare job
type RunnerPort interface {
	Run(ctx context.Context) (Result, error)
}

// StorageRepo replaces the prepared tables wholesale from staged files
type StorageRepo interface {
	// LoadAnswers creates AnswerTable from flattened answer records
	LoadAnswers(ctx context.Context, staged string) (int64, error)

	// CreateAnswers creates an empty AnswerTable with the given columns
	CreateAnswers(ctx context.Context, columns []string) error

	// LoadQuestions creates QuestionTable from ordered question records
	LoadQuestions(ctx context.Context, staged string) (int64, error)

	// LoadPrices creates PriceTable from the model price csv
	LoadPrices(ctx context.Context, csv string) (int64, error)
}
