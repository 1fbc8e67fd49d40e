// Package repo provides the engine-backed repository for the convert service
package repo

import (
	"context"
	"database/sql"
	"fmt"

	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/store"
	"evalsnap/internal/services/convert/domain"
)

// duck implements domain.StorageRepo over a store.Engine
type duck struct{ e store.Engine }

// New returns the engine-backed StorageRepo
func New(e store.Engine) domain.StorageRepo { return &duck{e: e} }

func (r *duck) Load(ctx context.Context, document string) (int64, error) {
	return r.e.LoadNDJSON(ctx, domain.Table, document)
}

func (r *duck) CreateEmpty(ctx context.Context) error {
	_, err := r.e.Exec(ctx, "CREATE OR REPLACE TABLE "+store.Ident(domain.Table)+" (result JSON)")
	return perr.WrapIf(err, perr.ErrorCodeQuery, "create empty snapshot table")
}

// statsSQL reads the fields through the row's json form so a field that no
// record carries yields NULL instead of a binder error
const statsSQL = `
	SELECT
		ROUND(AVG(TRY_CAST(json_extract_string(to_json(t), '$.result.time') AS DOUBLE)) / 1000, 2),
		ROUND(AVG(TRY_CAST(json_extract_string(to_json(t), '$.result.usage.totalTokens') AS DOUBLE)), 0),
		COUNT(*)
	FROM %s AS t`

func (r *duck) Stats(ctx context.Context) (domain.Stats, error) {
	var (
		secs, tokens sql.NullFloat64
		out          domain.Stats
	)
	q := fmt.Sprintf(statsSQL, store.Ident(domain.Table))
	if err := r.e.QueryRow(ctx, q).Scan(&secs, &tokens, &out.TotalEvaluations); err != nil {
		return domain.Stats{}, perr.Wrap(err, perr.ErrorCodeQuery, "compute statistics")
	}
	out.AvgResponseTimeSeconds = nullable(secs)
	out.AvgTokensUsed = nullable(tokens)
	return out, nil
}

func (r *duck) ExportParquet(ctx context.Context, path string) error {
	return r.e.Export(ctx, domain.Table, store.FormatParquet, path)
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
