package modkit

import (
	"io"

	"evalsnap/internal/platform/layout"
)

// Option mutates boot configuration
type Option func(*bootCfg)

// bootCfg is internal wiring state for options
type bootCfg struct {
	out      io.Writer
	layout   *layout.Layout
	envFiles []string
	noEnv    bool
}

// WithOut sets the operator console
func WithOut(w io.Writer) Option {
	return func(c *bootCfg) { c.out = w }
}

// WithLayout pins the working layout instead of reading EVALSNAP_ROOT
func WithLayout(l layout.Layout) Option {
	return func(c *bootCfg) { c.layout = &l }
}

// WithEnvFiles loads the given dotenv files instead of ./.env
func WithEnvFiles(files ...string) Option {
	return func(c *bootCfg) { c.envFiles = append(c.envFiles, files...) }
}

// WithoutEnvFile skips dotenv loading entirely
func WithoutEnvFile() Option {
	return func(c *bootCfg) { c.noEnv = true }
}
