// Package repo provides the engine-backed repository for the export service
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"evalsnap/internal/modkit/repokit"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/store"
	"evalsnap/internal/services/export/domain"
)

// binder implements repokit.Binder[domain.StorageRepo]
type binder struct{}

// NewDuck returns a duckdb binder for domain.StorageRepo
func NewDuck() repokit.Binder[domain.StorageRepo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.StorageRepo { return &duck{q: q} }

type duck struct{ q repokit.Queryer }

func (r *duck) HasTable(ctx context.Context, table string) (bool, error) {
	n, err := store.Scalar[int64](ctx, r.q,
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'main' AND table_name = ?",
		table,
	)
	if err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeQuery, "lookup table %s", table)
	}
	return n > 0, nil
}

func (r *duck) FirstOfTable(ctx context.Context, table string, n int) ([]json.RawMessage, error) {
	q := fmt.Sprintf(`
		SELECT to_json(t)::VARCHAR
		FROM %s AS t
		ORDER BY rowid
		LIMIT %d`, store.Ident(table), n)
	return r.objects(ctx, q)
}

func (r *duck) FirstOfParquet(ctx context.Context, path string, n int) ([]json.RawMessage, error) {
	q := fmt.Sprintf(`
		SELECT to_json(t)::VARCHAR
		FROM (
			SELECT * EXCLUDE (file_row_number)
			FROM read_parquet(%s, file_row_number = true)
			ORDER BY file_row_number
			LIMIT %d
		) AS t`, store.Literal(path), n)
	return r.objects(ctx, q)
}

func (r *duck) objects(ctx context.Context, q string) ([]json.RawMessage, error) {
	out, err := store.Many(ctx, r.q, func(row store.Row) (json.RawMessage, error) {
		var s string
		if err := row.Scan(&s); err != nil {
			return nil, err
		}
		return json.RawMessage(s), nil
	}, q)
	if err != nil {
		return nil, perr.WithOp(perr.Wrap(err, perr.ErrorCodeQuery, "select export records"), "export")
	}
	return out, nil
}
