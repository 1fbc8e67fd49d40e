package duck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   1  ", " select 1 "},
		{"COPY\t\"snapshot\"\nTO 'x.parquet'\r\n(FORMAT PARQUET)", "COPY \"snapshot\" TO 'x.parquet' (FORMAT PARQUET)"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

func TestTracer_InfoAndWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf))

	type logLine struct {
		Level     string  `json:"level"`
		ElapsedMS float64 `json:"elapsed_ms"`
		Slow      bool    `json:"slow"`
		SQL       string  `json:"sql"`
		Error     string  `json:"error"`
		Message   string  `json:"message"`
		Component string  `json:"component"`
	}

	ev := QueryEvent{
		SQL:       "SELECT COUNT(*)\n FROM  \"snapshot\"",
		Args:      []any{"snapshot"},
		ElapsedUS: 2500,
		Err:       errors.New("boom"),
	}
	tr.OnQuery(context.Background(), ev)

	var line logLine
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal info log: %v\nraw=%s", err, buf.String())
	}
	if line.Level != "info" || line.Slow {
		t.Fatalf("info path mismatch: %+v", line)
	}
	if math.Abs(line.ElapsedMS-2.5) > 0.0005 {
		t.Fatalf("elapsed_ms = %v, want 2.5", line.ElapsedMS)
	}
	if line.SQL != `SELECT COUNT(*) FROM "snapshot"` {
		t.Fatalf("sql not compacted: %q", line.SQL)
	}
	if line.Error != "boom" || line.Message != "duckdb query" || line.Component != "duckdb" {
		t.Fatalf("fields mismatch: %+v", line)
	}

	buf.Reset()
	ev.Slow = true
	tr.OnQuery(context.Background(), ev)
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal warn log: %v", err)
	}
	if line.Level != "warn" || !line.Slow {
		t.Fatalf("warn path mismatch: %+v", line)
	}
}
