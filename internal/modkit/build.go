package modkit

import (
	"context"
	"os"

	"evalsnap/internal/core/version"
	"evalsnap/internal/platform/config"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/layout"
	"evalsnap/internal/platform/logger"
	"evalsnap/internal/platform/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// exit is swapped in tests
var exit = os.Exit

// Boot prepares a one-shot stage: optional .env, logger, run id and Deps.
// The returned context carries the run id and stage for logger.C.
func Boot(stage string, opts ...Option) (context.Context, Deps) {
	c := bootCfg{out: os.Stdout}
	for _, o := range opts {
		o(&c)
	}

	// best effort; real env always wins over the file
	if !c.noEnv {
		_ = godotenv.Load(c.envFiles...)
	}

	runID := uuid.NewString()
	lo := logger.FromEnv()
	lo.StaticFields = version.Info(stage).Fields()
	logger.Init(lo)

	ctx := logger.WithRun(context.Background(), runID, stage)

	root := config.New()
	lay := layout.FromConfig(root)
	if c.layout != nil {
		lay = *c.layout
	}

	return ctx, Deps{
		Log:    *logger.C(ctx),
		Cfg:    root,
		Layout: lay,
		Out:    c.out,
		Duck:   store.DuckFromConfig(root),
	}
}

// Finish logs a terminal stage error and exits with its status; nil is a no-op
func Finish(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}
	l := logger.C(ctx)
	evt := l.Error().Err(err).Str("error_kind", perr.CodeOf(err).String())
	if e, ok := perr.As(err); ok {
		if e.Line() > 0 {
			evt = evt.Int("line", e.Line())
		}
		if e.Field() != "" {
			evt = evt.Str("field", e.Field())
		}
	}
	evt.Msg(msg)
	exit(perr.ExitCode(err))
}
