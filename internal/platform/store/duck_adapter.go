package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/store/duck"
)

// maxObjectBytes bounds a single NDJSON record the engine will parse
const maxObjectBytes = 64 << 20

// sqlConn is the database/sql surface shared by *sql.DB and *sql.Tx
type sqlConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// duckAdapter wraps duck.Duck and implements Engine
// it also emits query trace events when a tracer is configured on duck.Duck
type duckAdapter struct {
	d *duck.Duck
	q querier
}

func newDuckAdapter(d *duck.Duck) *duckAdapter {
	return &duckAdapter{
		d: d,
		q: querier{
			conn:   d.DB,
			tracer: d.Tracer,
			slowUS: int64(d.SlowMs) * 1000,
		},
	}
}

func (a *duckAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("duckdb: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *duckAdapter) Close() error { return a.d.Close() }

func (a *duckAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return a.q.Exec(ctx, sql, args...)
}

func (a *duckAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return a.q.Query(ctx, sql, args...)
}

func (a *duckAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return a.q.QueryRow(ctx, sql, args...)
}

func (a *duckAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.d.DB.BeginTx(ctx, nil)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeQuery, "begin transaction")
	}
	q := querier{conn: tx, tracer: a.q.tracer, slowUS: a.q.slowUS}
	if err := fn(q); err != nil {
		_ = tx.Rollback()
		return err
	}
	return perr.WrapIf(tx.Commit(), perr.ErrorCodeQuery, "commit transaction")
}

// LoadNDJSON replaces table with the records of a newline-delimited JSON file;
// a record missing a key reads back as NULL in that column
func (a *duckAdapter) LoadNDJSON(ctx context.Context, table, path string) (int64, error) {
	stmt := fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM %s", Ident(table), ReadNDJSON(path))
	if _, err := a.Exec(ctx, stmt); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeLoad, "load %s into %s", path, table)
	}
	var n int64
	if err := a.QueryRow(ctx, "SELECT COUNT(*) FROM "+Ident(table)).Scan(&n); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeQuery, "count %s", table)
	}
	return n, nil
}

// Export copies table to path in format, in insertion order
func (a *duckAdapter) Export(ctx context.Context, table string, format Format, path string) error {
	opts := "FORMAT " + string(format)
	if format == FormatCSV {
		opts += ", HEADER true"
	}
	stmt := fmt.Sprintf("COPY %s TO %s (%s)", Ident(table), Literal(path), opts)
	if _, err := a.Exec(ctx, stmt); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeQuery, "export %s to %s", table, path)
	}
	return nil
}

func (a *duckAdapter) HasTable(ctx context.Context, table string) (bool, error) {
	var n int
	err := a.QueryRow(ctx,
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'main' AND table_name = ?",
		table,
	).Scan(&n)
	if err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeQuery, "lookup table %s", table)
	}
	return n > 0, nil
}

// ReadNDJSON is the table function scanning a newline-delimited JSON file.
// Every record is sampled so the column set is the union of all keys.
func ReadNDJSON(path string) string {
	return fmt.Sprintf(
		"read_json_auto(%s, format = 'newline_delimited', sample_size = -1, maximum_object_size = %d)",
		Literal(path), maxObjectBytes,
	)
}

// Ident quotes an identifier for the engine
func Ident(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Literal quotes a string literal for the engine; table functions and COPY
// targets do not accept bind parameters
func Literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// querier runs statements against a pool or a transaction with tracing
type querier struct {
	conn   sqlConn
	tracer duck.QueryTracer
	slowUS int64
}

func (q querier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := q.conn.ExecContext(ctx, sql, args...)
	q.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return tag{res: res, sql: sql}, nil
}

func (q querier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := q.conn.QueryContext(ctx, sql, args...)
	q.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (q querier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := q.conn.QueryRowContext(ctx, sql, args...)
	// emit after Scan completes, capturing the scan error
	return row{
		r: r,
		after: func(scanErr error) {
			q.emit(ctx, sql, args, start, scanErr)
		},
	}
}

// emit sends a query event to the configured tracer
func (q querier) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if q.tracer == nil {
		return
	}
	elapsedUS := time.Since(start).Microseconds()
	slow := q.slowUS >= 0 && elapsedUS >= q.slowUS
	q.tracer.OnQuery(ctx, duck.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Err:       err,
		Slow:      slow,
	})
}

// adapters for database/sql to our tiny Row/Rows/CommandTag

type row struct {
	r     *sql.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct{ r *sql.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { _ = x.r.Close() }
func (x rows) Columns() []string {
	cols, err := x.r.Columns()
	if err != nil {
		return nil
	}
	return cols
}

// tag renders sql.Result the way command tags read: verb plus affected rows
type tag struct {
	res sql.Result
	sql string
}

func (t tag) RowsAffected() int64 {
	n, err := t.res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func (t tag) String() string {
	verb := strings.ToUpper(strings.Fields(t.sql + " EXEC")[0])
	return fmt.Sprintf("%s %d", verb, t.RowsAffected())
}
