// Package service implements the peek job: the first rows of the columnar
// export printed to the operator
package service

import (
	"context"
	"fmt"
	"io"

	"evalsnap/internal/adapters/columnar"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/logger"
	"evalsnap/internal/services/peek/domain"
)

// Service implements domain.RunnerPort
type Service struct {
	In  domain.Input
	Out io.Writer
}

// New constructs a new peek service
func New(in domain.Input, out io.Writer) *Service {
	if in.Rows <= 0 {
		in.Rows = domain.DefaultRows
	}
	if out == nil {
		out = io.Discard
	}
	return &Service{In: in, Out: out}
}

// Run reads the file footer and renders the leading rows
func (s *Service) Run(ctx context.Context) (res domain.Result, err error) {
	log := logger.For(ctx, "peek")

	f, err := columnar.Open(s.In.Parquet)
	if err != nil {
		return res, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = perr.Wrapf(cerr, perr.ErrorCodeFilesystem, "close %s", s.In.Parquet)
		}
	}()

	t, err := f.Head(ctx, s.In.Rows)
	if err != nil {
		return res, err
	}
	res = domain.Result{
		TotalRows: f.NumRows(),
		RowGroups: f.NumRowGroups(),
		Columns:   len(t.Columns),
		Shown:     len(t.Rows),
	}

	fmt.Fprintf(s.Out, "%s: %d rows, %d columns, %d row groups\n", s.In.Parquet, res.TotalRows, res.Columns, res.RowGroups)
	if err := t.Render(s.Out); err != nil {
		return res, perr.Wrap(err, perr.ErrorCodeFilesystem, "render rows")
	}

	log.Debug().Int64("rows", res.TotalRows).Int("shown", res.Shown).Msg("parquet peeked")
	return res, nil
}
