package module

import (
	"evalsnap/internal/platform/config"
	"evalsnap/internal/platform/layout"
)

// Options holds configuration settings for the expand module
type Options struct {
	Archive string `env:"EVALSNAP_EXPAND_ARCHIVE" validate:"required"`
	Output  string `env:"EVALSNAP_EXPAND_OUTPUT" validate:"required,nefield=Archive"`
}

// FromConfig extracts Options from the given config.Conf; paths default to the layout
func FromConfig(cfg config.Conf, lay layout.Layout) Options {
	ef := cfg.Prefix("EVALSNAP_EXPAND_")
	return Options{
		Archive: ef.MayString("ARCHIVE", lay.Archive()),
		Output:  ef.MayString("OUTPUT", lay.Document()),
	}
}
