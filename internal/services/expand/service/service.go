// Package service implements the expand stage: archive in, plaintext document out
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"evalsnap/internal/adapters/codec"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/fsx"
	"evalsnap/internal/platform/logger"
	"evalsnap/internal/services/expand/domain"
)

// Service implements domain.RunnerPort
type Service struct {
	In  domain.Input
	Out io.Writer
}

// New constructs a new expand service
func New(in domain.Input, out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{In: in, Out: out}
}

// Run decompresses the whole archive in memory and publishes the document in one
// rename, so a corrupt archive never leaves an output file behind
func (s *Service) Run(ctx context.Context) (domain.Result, error) {
	log := logger.For(ctx, "expand")

	c, err := codec.ForPath(s.In.Archive)
	if err != nil {
		return domain.Result{}, err
	}

	fmt.Fprintln(s.Out, "Reading compressed snapshot file...")
	blob, err := os.ReadFile(s.In.Archive)
	if err != nil {
		return domain.Result{}, perr.Wrapf(err, perr.ErrorCodeDecompression, "read archive %s", s.In.Archive)
	}

	plain, err := c.Decompress(blob)
	if err != nil {
		return domain.Result{}, perr.WithOp(err, "expand")
	}

	if err := fsx.WriteFile(s.In.Output, plain); err != nil {
		return domain.Result{}, err
	}

	log.Info().
		Str("codec", c.Name()).
		Int("compressed_bytes", len(blob)).
		Int("output_bytes", len(plain)).
		Str("output", s.In.Output).
		Msg("archive expanded")
	fmt.Fprintf(s.Out, "Successfully extracted %s to %s\n", filepath.Base(s.In.Archive), filepath.Base(s.In.Output))

	return domain.Result{Codec: c.Name(), CompressedBytes: len(blob), OutputBytes: len(plain)}, nil
}
