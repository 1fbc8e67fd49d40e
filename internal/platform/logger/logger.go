// Package logger wraps zerolog for the batch stages. Diagnostics go to stderr
// so stdout stays free for the operator console.
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"evalsnap/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the logger
type Options struct {
	Level        string
	Format       string
	Service      string
	Component    string
	Writer       io.Writer
	NoColor      bool
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the raw view, which never logs itself
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(rc.Get("LEVEL", "info")),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", "evalsnap"),
		Component:   rc.Get("COMPONENT", ""),
		NoColor:     rc.GetBool("NO_COLOR", false),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

// Logger is the project-wide logging type
type Logger = zerolog.Logger

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		w := opt.Writer
		if w == nil {
			w = os.Stderr
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: opt.NoColor}
		}

		zc := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok {
			zc = zc.Str("go_version", bi.GoVersion)
		}
		for k, v := range map[string]string{"service": opt.Service, "component": opt.Component} {
			if v != "" {
				zc = zc.Str(k, v)
			}
		}
		for k, v := range opt.StaticFields {
			zc = zc.Str(k, v)
		}

		l := zc.Logger()
		if opt.WithCaller {
			l = l.With().Caller().Logger()
		}
		if opt.SampleEvery > 1 {
			l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		root.Store(&l)
	})
}

// parseLevel accepts zerolog level names plus "warning"; anything else is info
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// run identifies one stage invocation
type run struct {
	id    string
	stage string
}

type runKey struct{}

// WithRun annotates ctx with the invocation id and stage name; empty values are ignored
func WithRun(ctx context.Context, runID, stage string) context.Context {
	r, _ := ctx.Value(runKey{}).(run)
	if runID != "" {
		r.id = runID
	}
	if stage != "" {
		r.stage = stage
	}
	if r == (run{}) {
		return ctx
	}
	return context.WithValue(ctx, runKey{}, r)
}

// C returns a child of the root logger carrying run_id and stage from ctx
func C(ctx context.Context) *Logger {
	r, _ := ctx.Value(runKey{}).(run)
	b := Get().With()
	if r.id != "" {
		b = b.Str("run_id", r.id)
	}
	if r.stage != "" {
		b = b.Str("stage", r.stage)
	}
	l := b.Logger()
	return &l
}

// For is C plus a component field, the logger a stage service works with
func For(ctx context.Context, component string) Logger {
	return C(ctx).With().Str("component", component).Logger()
}

// Named returns a child of the root logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
