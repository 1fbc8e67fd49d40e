package module

import (
	"evalsnap/internal/platform/config"
	"evalsnap/internal/platform/layout"
	"evalsnap/internal/services/peek/domain"
)

// Options holds configuration settings for the peek module
type Options struct {
	Parquet string `env:"EVALSNAP_PEEK_PARQUET" validate:"required"`
	Rows    int    `env:"EVALSNAP_PEEK_ROWS" validate:"min=1,max=1000"`
}

// FromConfig extracts Options from the given config.Conf; the path defaults to the layout
func FromConfig(cfg config.Conf, lay layout.Layout) Options {
	pf := cfg.Prefix("EVALSNAP_PEEK_")
	return Options{
		Parquet: pf.MayString("PARQUET", lay.Parquet()),
		Rows:    pf.MayInt("ROWS", domain.DefaultRows),
	}
}
