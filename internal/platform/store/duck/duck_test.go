package duck

import (
	"context"
	"database/sql/driver"
	"errors"
	"path/filepath"
	"testing"

	perr "evalsnap/internal/platform/errors"
	kit "evalsnap/internal/platform/testkit"

	"github.com/marcboeker/go-duckdb"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cases := []struct {
		cfg  Config
		want string
	}{
		{Config{}, ""},
		{Config{Path: "external/snapshot.duckdb"}, "external/snapshot.duckdb"},
		{Config{Path: "a.duckdb", ReadOnly: true}, "a.duckdb?access_mode=READ_ONLY"},
		{Config{ReadOnly: true}, ""},
	}
	for _, c := range cases {
		if got := DSN(c.cfg); got != c.want {
			t.Fatalf("DSN(%+v) = %q, want %q", c.cfg, got, c.want)
		}
	}
}

func TestInitStatements_DefaultsToOneThread(t *testing.T) {
	got := initStatements(Config{})
	require.Equal(t, "SET threads TO 1", got[0])
	require.Equal(t, "SET threads TO 4", initStatements(Config{Threads: 4})[0])
}

func TestOpen_InMemory(t *testing.T) {
	d, err := Open(context.Background(), Config{Threads: 1, SlowMs: 7}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	var threads int64
	require.NoError(t, d.DB.QueryRow("SELECT current_setting('threads')").Scan(&threads))
	require.EqualValues(t, 1, threads)
	require.Equal(t, 7, d.SlowMs)
}

func TestOpen_FileThenReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.duckdb")

	d, err := Open(context.Background(), Config{Path: path}, nil)
	require.NoError(t, err)
	_, err = d.DB.Exec("CREATE TABLE question AS SELECT 1 AS no")
	require.NoError(t, err)
	require.NoError(t, d.Close())

	ro, err := Open(context.Background(), Config{Path: path, ReadOnly: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ro.Close() })

	var n int
	require.NoError(t, ro.DB.QueryRow("SELECT COUNT(*) FROM question").Scan(&n))
	require.Equal(t, 1, n)
	_, err = ro.DB.Exec("INSERT INTO question VALUES (2)")
	require.Error(t, err)
}

func TestOpen_ConnectorError(t *testing.T) {
	kit.Swap(t, &newConnector, func(string, func(driver.ExecerContext) error) (*duckdb.Connector, error) {
		return nil, errors.New("bad dsn")
	})
	_, err := Open(context.Background(), Config{}, nil)
	require.True(t, perr.IsCode(err, perr.ErrorCodeQuery), "got %v", err)
}

func TestClose_Nil(t *testing.T) {
	var d *Duck
	require.NoError(t, d.Close())
}
