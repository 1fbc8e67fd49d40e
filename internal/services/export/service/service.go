// Package service implements the export stage: first records of the dataset
// out to the web layer's json document
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"evalsnap/internal/modkit/repokit"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/fsx"
	"evalsnap/internal/platform/logger"
	"evalsnap/internal/platform/store"
	"evalsnap/internal/services/export/domain"
)

// Service implements domain.RunnerPort
type Service struct {
	In   domain.Input
	Open store.Opener
	Repo repokit.Binder[domain.StorageRepo]
	Out  io.Writer
}

// New constructs a new export service
func New(in domain.Input, open store.Opener, b repokit.Binder[domain.StorageRepo], out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{In: in, Open: open, Repo: b, Out: out}
}

// Run selects at most domain.Limit records and overwrites the output document
func (s *Service) Run(ctx context.Context) (res domain.Result, err error) {
	log := logger.For(ctx, "export").With().Str("source", s.In.Source.String()).Logger()
	res.Source = s.In.Source

	backing, path, readOnly := s.In.Database, s.In.Database, true
	if s.In.Source == domain.SourceParquet {
		backing, path, readOnly = s.In.Parquet, "", false
	}
	if !fsx.Exists(backing) {
		return res, perr.WithField(perr.DataUnavailablef("dataset %s not found", backing), "source")
	}

	eng, err := s.Open(ctx, path, readOnly)
	if err != nil {
		return res, err
	}
	defer func() {
		if cerr := eng.Close(); cerr != nil && err == nil {
			err = perr.Wrap(cerr, perr.ErrorCodeQuery, "close engine")
		}
	}()
	r := repokit.MustBind(s.Repo, eng)

	var recs []json.RawMessage
	switch s.In.Source {
	case domain.SourceParquet:
		recs, err = r.FirstOfParquet(ctx, s.In.Parquet, domain.Limit)
	default:
		var ok bool
		if ok, err = r.HasTable(ctx, domain.QuestionTable); err == nil && !ok {
			err = perr.DataUnavailablef("table %s not found in %s", domain.QuestionTable, s.In.Database)
		}
		if err == nil {
			recs, err = r.FirstOfTable(ctx, domain.QuestionTable, domain.Limit)
		}
	}
	if err != nil {
		return res, err
	}

	doc, err := encode(recs)
	if err != nil {
		return res, err
	}
	if err := write(s.In.Output, doc); err != nil {
		return res, err
	}

	res.Records = len(recs)
	log.Info().Int("records", res.Records).Str("output", s.In.Output).Msg("questions exported")
	fmt.Fprintf(s.Out, "Exported %d records to %s\n", res.Records, s.In.Output)
	return res, nil
}

// encode renders records as a json array indented by two spaces, keeping each
// record's key order
func encode(recs []json.RawMessage) ([]byte, error) {
	if recs == nil {
		recs = []json.RawMessage{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeQuery, "encode export records")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// write truncates and rewrites dst in place; the document is rebuildable so a
// torn write is tolerated
func write(dst string, b []byte) error {
	if err := fsx.EnsureDir(dst); err != nil {
		return err
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeFilesystem, "write %s", dst)
	}
	return nil
}
