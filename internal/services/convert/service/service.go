// Package service implements the convert stage: document in, statistics and
// columnar file out
package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"evalsnap/internal/adapters/ndjson"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/fsx"
	"evalsnap/internal/platform/logger"
	"evalsnap/internal/platform/store"
	"evalsnap/internal/services/convert/domain"
)

// Binder turns an open engine into the repo the service drives
type Binder func(store.Engine) domain.StorageRepo

// Service implements domain.RunnerPort
type Service struct {
	In   domain.Input
	Open store.Opener
	Bind Binder
	Out  io.Writer
}

// New constructs a new convert service
func New(in domain.Input, open store.Opener, bind Binder, out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{In: in, Open: open, Bind: bind, Out: out}
}

// Run validates the document, loads it into an in-memory engine, prints the
// statistics and publishes the Parquet file with a single rename
func (s *Service) Run(ctx context.Context) (res domain.Result, err error) {
	log := logger.For(ctx, "convert")

	fmt.Fprintf(s.Out, "Converting %s to Parquet format...\n", filepath.Base(s.In.Document))

	lines, err := ndjson.ValidateFile(s.In.Document)
	if err != nil {
		return res, err
	}
	log.Debug().Int("records", lines).Str("document", s.In.Document).Msg("document validated")

	eng, err := s.Open(ctx, "", false)
	if err != nil {
		return res, err
	}
	defer func() {
		if cerr := eng.Close(); cerr != nil && err == nil {
			err = perr.Wrap(cerr, perr.ErrorCodeQuery, "close engine")
		}
	}()
	r := s.Bind(eng)

	if lines == 0 {
		err = r.CreateEmpty(ctx)
	} else {
		var rows int64
		rows, err = r.Load(ctx, s.In.Document)
		if err == nil && rows != int64(lines) {
			err = perr.Loadf("loaded %d rows from %s, want %d", rows, s.In.Document, lines)
		}
	}
	if err != nil {
		return res, err
	}
	res.Records = lines
	fmt.Fprintf(s.Out, "Total records: %d\n", lines)

	if res.Stats, err = r.Stats(ctx); err != nil {
		return res, err
	}
	printStats(s.Out, res.Stats)

	err = fsx.Commit(s.In.Parquet, func(tmp string) error {
		return r.ExportParquet(ctx, tmp)
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Int("records", res.Records).
		Str("parquet", s.In.Parquet).
		Msg("snapshot converted")
	return res, nil
}

func printStats(w io.Writer, st domain.Stats) {
	fmt.Fprintln(w, "\nModel Performance Statistics:")
	fmt.Fprintf(w, "Average response time: %s seconds\n", format(st.AvgResponseTimeSeconds, 2))
	fmt.Fprintf(w, "Average tokens used: %s\n", format(st.AvgTokensUsed, 0))
	fmt.Fprintf(w, "Total evaluations: %d\n", st.TotalEvaluations)
}

// format renders a rounded average, "n/a" when no record carried the field
func format(v *float64, places int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", places, *v)
}
