// Package service implements the prepare stage: builds the row-store database
// the export stage reads from the snapshot, the exam question files and the
// model price list
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"evalsnap/internal/adapters/evalrecord"
	"evalsnap/internal/adapters/ndjson"
	"evalsnap/internal/modkit/repokit"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/fsx"
	"evalsnap/internal/platform/logger"
	"evalsnap/internal/platform/store"
	"evalsnap/internal/services/prepare/domain"
)

// Service implements domain.RunnerPort
type Service struct {
	In   domain.Input
	Open store.Opener
	Repo repokit.Binder[domain.StorageRepo]
	Out  io.Writer
}

// New constructs a new prepare service
func New(in domain.Input, open store.Opener, b repokit.Binder[domain.StorageRepo], out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{In: in, Open: open, Repo: b, Out: out}
}

// staged are the ndjson files the engine loads, written to a scratch dir
type staged struct {
	answers   string
	nAnswers  int
	questions string
	prices    string
}

// Run rebuilds the database from scratch; the old file is replaced only once the
// new one is complete
func (s *Service) Run(ctx context.Context) (domain.Result, error) {
	log := logger.For(ctx, "prepare")
	var res domain.Result

	scratch, err := os.MkdirTemp("", "evalsnap-prepare-*")
	if err != nil {
		return res, perr.Wrap(err, perr.ErrorCodeFilesystem, "create scratch dir")
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	st, err := s.stage(scratch, &res, log)
	if err != nil {
		return res, err
	}

	err = fsx.Commit(s.In.Database, func(tmp string) error {
		_ = os.Remove(tmp + ".wal")
		if err := s.build(ctx, tmp, st, &res); err != nil {
			return err
		}
		// a wal left by an older database would be replayed onto the new file
		_ = os.Remove(s.In.Database + ".wal")
		return nil
	})
	if err != nil {
		return res, err
	}

	fmt.Fprintf(s.Out, "inserted %d rows into %s table\n", res.Answers, domain.AnswerTable)
	if st.questions != "" {
		fmt.Fprintf(s.Out, "Inserted %d questions into table '%s'\n", res.Questions, domain.QuestionTable)
	}
	if st.prices != "" {
		fmt.Fprintf(s.Out, "Inserted %d rows into table '%s'\n", res.Prices, domain.PriceTable)
	}
	fmt.Fprintf(s.Out, "Database saved to %s\n", s.In.Database)

	log.Info().
		Int64(domain.AnswerTable, res.Answers).
		Int64(domain.QuestionTable, res.Questions).
		Int64(domain.PriceTable, res.Prices).
		Strs("skipped", res.Skipped).
		Str("database", s.In.Database).
		Msg("database prepared")
	return res, nil
}

// stage flattens the snapshot and orders the questions into scratch files
func (s *Service) stage(scratch string, res *domain.Result, log logger.Logger) (staged, error) {
	var st staged

	recs, err := ndjson.ReadFile(s.In.Document)
	if err != nil {
		return st, err
	}
	rows := make([][]byte, 0, len(recs))
	for _, rec := range recs {
		row, err := evalrecord.Flatten(rec.Raw)
		if err != nil {
			return st, perr.WithLine(perr.Wrap(err, perr.ErrorCodeLoad, "flatten record"), rec.Line)
		}
		rows = append(rows, row)
	}
	st.nAnswers = len(rows)
	if len(rows) > 0 {
		st.answers = filepath.Join(scratch, "answers.jsonl")
		if err := ndjson.WriteFile(st.answers, rows); err != nil {
			return st, err
		}
	}

	var qs []evalrecord.Question
	for _, file := range s.In.QuestionFiles {
		if !fsx.Exists(file) {
			s.skip(res, log, file)
			continue
		}
		lines, err := ndjson.ReadFile(file)
		if err != nil {
			return st, perr.WithField(err, file)
		}
		exam := evalrecord.ExamName(file)
		for _, l := range lines {
			qs = append(qs, evalrecord.Question{Raw: l.Raw, ExamName: exam})
		}
	}
	if len(qs) > 0 {
		ordered, err := evalrecord.OrderQuestions(qs)
		if err != nil {
			return st, perr.Wrap(err, perr.ErrorCodeLoad, "order questions")
		}
		st.questions = filepath.Join(scratch, "questions.jsonl")
		if err := ndjson.WriteFile(st.questions, ordered); err != nil {
			return st, err
		}
	}

	if fsx.Exists(s.In.PriceCSV) {
		st.prices = s.In.PriceCSV
	} else {
		s.skip(res, log, s.In.PriceCSV)
	}
	return st, nil
}

// build creates every table inside one transaction on a fresh database file
func (s *Service) build(ctx context.Context, path string, st staged, res *domain.Result) (err error) {
	eng, err := s.Open(ctx, path, false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := eng.Close(); cerr != nil && err == nil {
			err = perr.Wrap(cerr, perr.ErrorCodeQuery, "close database")
		}
	}()

	return repokit.InTx(ctx, eng, s.Repo, func(r domain.StorageRepo) error {
		var err error
		if st.answers != "" {
			res.Answers, err = r.LoadAnswers(ctx, st.answers)
			if err == nil && res.Answers != int64(st.nAnswers) {
				err = perr.Loadf("loaded %d answers, want %d", res.Answers, st.nAnswers)
			}
		} else {
			err = r.CreateAnswers(ctx, evalrecord.Columns())
		}
		if err != nil {
			return err
		}
		if st.questions != "" {
			if res.Questions, err = r.LoadQuestions(ctx, st.questions); err != nil {
				return err
			}
		}
		if st.prices != "" {
			if res.Prices, err = r.LoadPrices(ctx, st.prices); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) skip(res *domain.Result, log logger.Logger, file string) {
	res.Skipped = append(res.Skipped, file)
	log.Warn().Str("file", file).Msg("input missing, skipped")
	fmt.Fprintf(s.Out, "Warning: %s does not exist.\n", file)
}
