package module

import (
	"evalsnap/internal/platform/config"
	"evalsnap/internal/platform/layout"
)

// Options holds configuration settings for the prepare module
type Options struct {
	Document      string   `env:"EVALSNAP_PREPARE_DOCUMENT" validate:"required"`
	Database      string   `env:"EVALSNAP_PREPARE_DATABASE" validate:"required,nefield=Document"`
	PriceCSV      string   `env:"EVALSNAP_PREPARE_PRICE_CSV" validate:"required"`
	QuestionFiles []string `env:"EVALSNAP_PREPARE_QUESTION_FILES" validate:"dive,required"`
}

// FromConfig extracts Options from the given config.Conf; paths default to the layout
func FromConfig(cfg config.Conf, lay layout.Layout) Options {
	pf := cfg.Prefix("EVALSNAP_PREPARE_")
	return Options{
		Document:      pf.MayString("DOCUMENT", lay.Document()),
		Database:      pf.MayString("DATABASE", lay.Database()),
		PriceCSV:      pf.MayString("PRICE_CSV", lay.PriceCSV()),
		QuestionFiles: pf.MayCSV("QUESTION_FILES", lay.QuestionFiles()),
	}
}
