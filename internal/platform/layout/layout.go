// Package layout resolves the fixed on-disk hand-off paths shared by the pipeline stages
package layout

import (
	"path/filepath"

	"evalsnap/internal/platform/config"
)

// Relative paths of every artifact, fixed for all stages
const (
	ArchiveRel   = "external/snapshot.jsonl.br"
	DocumentRel  = "external/snapshot.jsonl"
	ParquetRel   = "external/snapshot.parquet"
	DatabaseRel  = "external/snapshot.duckdb"
	QuestionsRel = "public/questions.json"
	PriceCSVRel  = "model_price_icon.csv"
)

// questionFilesRel lists the exam question sources in load order
var questionFilesRel = []string{
	"external/openthaigpt_eval/onet_m6_english.jsonl",
	"external/openthaigpt_eval/onet_m6_math.jsonl",
	"external/openthaigpt_eval/onet_m6_science.jsonl",
	"external/openthaigpt_eval/onet_m6_social.jsonl",
	"external/openthaigpt_eval/onet_m6_thai.jsonl",
	"external/thai_exam/data/tgat/tgat_test.jsonl",
	"external/thai_exam/data/tpat1/tpat1_test.jsonl",
}

// Layout anchors the relative paths at a working root
type Layout struct {
	Root string
}

// New returns a Layout rooted at root ("" means the current directory)
func New(root string) Layout {
	if root == "" {
		root = "."
	}
	return Layout{Root: root}
}

// FromConfig reads EVALSNAP_ROOT, defaulting to the current directory
func FromConfig(cfg config.Conf) Layout {
	return New(cfg.Prefix("EVALSNAP_").MayString("ROOT", "."))
}

func (l Layout) at(rel string) string { return filepath.Join(l.Root, filepath.FromSlash(rel)) }

// Archive is the compressed snapshot
func (l Layout) Archive() string { return l.at(ArchiveRel) }

// Document is the decompressed NDJSON snapshot
func (l Layout) Document() string { return l.at(DocumentRel) }

// Parquet is the columnar export file
func (l Layout) Parquet() string { return l.at(ParquetRel) }

// Database is the DuckDB row-store queried by the export stage
func (l Layout) Database() string { return l.at(DatabaseRel) }

// Questions is the JSON document consumed by the site build
func (l Layout) Questions() string { return l.at(QuestionsRel) }

// PriceCSV is the model price and icon sheet
func (l Layout) PriceCSV() string { return l.at(PriceCSVRel) }

// QuestionFiles returns the exam question sources in load order
func (l Layout) QuestionFiles() []string {
	out := make([]string, len(questionFilesRel))
	for i, rel := range questionFilesRel {
		out[i] = l.at(rel)
	}
	return out
}
