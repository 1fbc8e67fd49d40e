package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/store/duck"
	kit "evalsnap/internal/platform/testkit"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T) Engine {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, Config{Duck: DuckConfig{Enabled: true, Threads: 1}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(ctx) })
	return s.Duck
}

const threeRecords = `{"_id":"a","result":{"time":1000,"usage":{"totalTokens":10}}}
{"_id":"b","result":{"time":2000}}
{"_id":"c","result":{"time":3000,"usage":{"totalTokens":30}},"extra":true}
`

func TestIdentAndLiteral(t *testing.T) {
	require.Equal(t, `"snapshot"`, Ident("snapshot"))
	require.Equal(t, `"we""ird"`, Ident(`we"ird`))
	require.Equal(t, `'external/snapshot.jsonl'`, Literal("external/snapshot.jsonl"))
	require.Equal(t, `'o''brien.jsonl'`, Literal("o'brien.jsonl"))
}

func TestLoadNDJSON_UnionOfKeys(t *testing.T) {
	ctx := context.Background()
	e := openMem(t)
	path := kit.WriteFile(t, t.TempDir(), "snapshot.jsonl", []byte(threeRecords))

	n, err := e.LoadNDJSON(ctx, "snapshot", path)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	missing, err := Scalar[int64](ctx, e, `SELECT COUNT(*) FROM "snapshot" WHERE extra IS NULL`)
	require.NoError(t, err)
	require.EqualValues(t, 2, missing)

	ok, err := e.HasTable(ctx, "snapshot")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = e.HasTable(ctx, "question")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoadNDJSON_ReplacesTable(t *testing.T) {
	ctx := context.Background()
	e := openMem(t)
	dir := t.TempDir()

	_, err := e.LoadNDJSON(ctx, "snapshot", kit.WriteFile(t, dir, "a.jsonl", []byte(threeRecords)))
	require.NoError(t, err)
	n, err := e.LoadNDJSON(ctx, "snapshot", kit.WriteFile(t, dir, "b.jsonl", []byte(`{"x":1}`+"\n")))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestLoadNDJSON_MissingFileIsLoadError(t *testing.T) {
	e := openMem(t)
	_, err := e.LoadNDJSON(context.Background(), "snapshot", filepath.Join(t.TempDir(), "nope.jsonl"))
	require.True(t, perr.IsCode(err, perr.ErrorCodeLoad), "got %v", err)
}

func TestExport_ParquetAndCSV(t *testing.T) {
	ctx := context.Background()
	e := openMem(t)
	dir := t.TempDir()
	_, err := e.LoadNDJSON(ctx, "snapshot", kit.WriteFile(t, dir, "s.jsonl", []byte(threeRecords)))
	require.NoError(t, err)

	pq := filepath.Join(dir, "snapshot.parquet")
	require.NoError(t, e.Export(ctx, "snapshot", FormatParquet, pq))
	require.Equal(t, "PAR1", string(kit.ReadFile(t, pq)[:4]))

	n, err := Scalar[int64](ctx, e, "SELECT COUNT(*) FROM read_parquet("+Literal(pq)+")")
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	csv := filepath.Join(dir, "snapshot.csv")
	require.NoError(t, e.Export(ctx, "snapshot", FormatCSV, csv))
	require.True(t, strings.HasPrefix(string(kit.ReadFile(t, csv)), "_id,"))
}

func TestExport_UnknownTableIsQueryError(t *testing.T) {
	e := openMem(t)
	err := e.Export(context.Background(), "missing", FormatParquet, filepath.Join(t.TempDir(), "x.parquet"))
	require.True(t, perr.IsCode(err, perr.ErrorCodeQuery), "got %v", err)
}

func TestTx_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	e := openMem(t)
	_, err := e.Exec(ctx, "CREATE TABLE model_price_icon (model_name VARCHAR)")
	require.NoError(t, err)

	require.NoError(t, e.Tx(ctx, func(q RowQuerier) error {
		return ExecOne(ctx, q, "INSERT INTO model_price_icon VALUES (?)", "gpt-4o")
	}))

	boom := errors.New("boom")
	err = e.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, "INSERT INTO model_price_icon VALUES ('dropped')"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	names, err := Many(ctx, e, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, "SELECT model_name FROM model_price_icon ORDER BY rowid")
	require.NoError(t, err)
	require.Equal(t, []string{"gpt-4o"}, names)
}

func TestCommandTag(t *testing.T) {
	ctx := context.Background()
	e := openMem(t)
	_, err := e.Exec(ctx, "CREATE TABLE t (a INTEGER)")
	require.NoError(t, err)
	tag, err := e.Exec(ctx, "insert into t VALUES (1), (2)")
	require.NoError(t, err)
	require.EqualValues(t, 2, tag.RowsAffected())
	require.Equal(t, "INSERT 2", tag.String())
}

func TestRowsColumnsAndMaps(t *testing.T) {
	ctx := context.Background()
	e := openMem(t)
	got, err := Maps(ctx, e, "SELECT 'gpt' AS model_name, 1.5 AS input_token_price")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "gpt", got[0]["model_name"])
}

func TestTracerReceivesStatements(t *testing.T) {
	var buf bytes.Buffer
	d, err := duck.Open(context.Background(), duck.Config{SlowMs: -1}, duck.Tracer(zerolog.New(&buf)))
	require.NoError(t, err)
	e := newDuckAdapter(d)
	t.Cleanup(func() { _ = e.Close() })

	var one int
	require.NoError(t, e.QueryRow(context.Background(), "SELECT 1").Scan(&one))
	_, err = e.Exec(context.Background(), "SELECT   2")
	require.NoError(t, err)

	out := buf.String()
	kit.MustContain(t, out, `"sql":"SELECT 1"`)
	kit.MustContain(t, out, `"sql":"SELECT 2"`)
	kit.MustContain(t, out, `"slow":false`)
}

func TestExport_WritesNothingOnFailure(t *testing.T) {
	e := openMem(t)
	dst := filepath.Join(t.TempDir(), "out.parquet")
	_ = e.Export(context.Background(), "missing", FormatParquet, dst)
	_, err := os.Stat(dst)
	require.True(t, os.IsNotExist(err))
}
