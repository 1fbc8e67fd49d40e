// Package repo provides the engine-backed repository for the prepare service
package repo

import (
	"context"
	"fmt"
	"strings"

	"evalsnap/internal/modkit/repokit"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/store"
	"evalsnap/internal/services/prepare/domain"
)

// binder implements repokit.Binder[domain.StorageRepo]
type binder struct{}

// NewDuck returns a duckdb binder for domain.StorageRepo
func NewDuck() repokit.Binder[domain.StorageRepo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.StorageRepo { return &duck{q: q} }

type duck struct{ q repokit.Queryer }

func (r *duck) LoadAnswers(ctx context.Context, staged string) (int64, error) {
	return r.fromNDJSON(ctx, domain.AnswerTable, staged)
}

func (r *duck) CreateAnswers(ctx context.Context, columns []string) error {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = store.Ident(c) + " JSON"
	}
	stmt := fmt.Sprintf("CREATE OR REPLACE TABLE %s (%s)", store.Ident(domain.AnswerTable), strings.Join(defs, ", "))
	_, err := r.q.Exec(ctx, stmt)
	return perr.WrapIf(err, perr.ErrorCodeQuery, "create empty answer table")
}

func (r *duck) LoadQuestions(ctx context.Context, staged string) (int64, error) {
	return r.fromNDJSON(ctx, domain.QuestionTable, staged)
}

func (r *duck) LoadPrices(ctx context.Context, csv string) (int64, error) {
	t := store.Ident(domain.PriceTable)
	err := store.ExecAll(ctx, r.q,
		fmt.Sprintf(`CREATE OR REPLACE TABLE %s (
			model_name VARCHAR,
			input_token_price DOUBLE,
			output_token_price DOUBLE,
			icon VARCHAR
		)`, t),
		fmt.Sprintf(`INSERT INTO %s SELECT * FROM read_csv(%s, header = true, columns = {
			'model_name': 'VARCHAR',
			'input_token_price': 'DOUBLE',
			'output_token_price': 'DOUBLE',
			'icon': 'VARCHAR'
		})`, t, store.Literal(csv)),
	)
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeLoad, "load prices from %s", csv)
	}
	return r.count(ctx, domain.PriceTable)
}

func (r *duck) fromNDJSON(ctx context.Context, table, staged string) (int64, error) {
	stmt := fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM %s", store.Ident(table), store.ReadNDJSON(staged))
	if _, err := r.q.Exec(ctx, stmt); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeLoad, "load %s", table)
	}
	return r.count(ctx, table)
}

func (r *duck) count(ctx context.Context, table string) (int64, error) {
	n, err := store.Scalar[int64](ctx, r.q, "SELECT COUNT(*) FROM "+store.Ident(table))
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeQuery, "count %s", table)
	}
	return n, nil
}
