package module

import (
	"evalsnap/internal/platform/config"
	"evalsnap/internal/platform/layout"
)

// Options holds configuration settings for the export module
type Options struct {
	Source   string `env:"EVALSNAP_EXPORT_SOURCE" validate:"oneof=table parquet"`
	Database string `env:"EVALSNAP_EXPORT_DATABASE" validate:"required"`
	Parquet  string `env:"EVALSNAP_EXPORT_PARQUET" validate:"required"`
	Output   string `env:"EVALSNAP_EXPORT_OUTPUT" validate:"required"`
}

// FromConfig extracts Options from the given config.Conf; paths default to the layout
func FromConfig(cfg config.Conf, lay layout.Layout) Options {
	xf := cfg.Prefix("EVALSNAP_EXPORT_")
	return Options{
		Source:   xf.MayString("SOURCE", "table"),
		Database: xf.MayString("DATABASE", lay.Database()),
		Parquet:  xf.MayString("PARQUET", lay.Parquet()),
		Output:   xf.MayString("OUTPUT", lay.Questions()),
	}
}
