package store

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"evalsnap/internal/platform/store/duck"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingTracer struct {
	mu  sync.Mutex
	sql []string
}

func (r *recordingTracer) OnQuery(_ context.Context, ev duck.QueryEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sql = append(r.sql, ev.SQL)
}

func TestWithLogger_SetsStoreLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := &Store{}
	require.NoError(t, WithLogger(zerolog.New(&buf))(s))

	s.Log.Info().Msg("engine ready")
	require.Contains(t, buf.String(), "engine ready")
}

func TestWithTracer_RejectsNil(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{}, WithTracer(nil))
	require.Error(t, err)
}

func TestWithTracer_SeesStatementsWithoutLogSQL(t *testing.T) {
	t.Parallel()

	rec := &recordingTracer{}
	s, err := Open(context.Background(),
		Config{Duck: DuckConfig{Enabled: true, Threads: 1, SlowQueryMs: -1}},
		WithTracer(rec))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	var n int
	require.NoError(t, s.Duck.QueryRow(context.Background(), "SELECT 41 + 1").Scan(&n))
	require.Equal(t, 42, n)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Contains(t, rec.sql, "SELECT 41 + 1")
}
