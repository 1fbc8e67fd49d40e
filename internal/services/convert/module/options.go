package module

import (
	"evalsnap/internal/platform/config"
	"evalsnap/internal/platform/layout"
)

// Options holds configuration settings for the convert module
type Options struct {
	Document string `env:"EVALSNAP_CONVERT_DOCUMENT" validate:"required"`
	Parquet  string `env:"EVALSNAP_CONVERT_PARQUET" validate:"required,nefield=Document"`
	Threads  int    `env:"EVALSNAP_DUCKDB_THREADS" validate:"min=1"`
}

// FromConfig extracts Options from the given config.Conf; paths default to the layout
func FromConfig(cfg config.Conf, lay layout.Layout, threads int) Options {
	cf := cfg.Prefix("EVALSNAP_CONVERT_")
	return Options{
		Document: cf.MayString("DOCUMENT", lay.Document()),
		Parquet:  cf.MayString("PARQUET", lay.Parquet()),
		Threads:  threads,
	}
}
