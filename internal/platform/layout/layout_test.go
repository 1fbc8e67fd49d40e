package layout

import (
	"path/filepath"
	"testing"

	"evalsnap/internal/platform/config"
)

func TestPathsUnderRoot(t *testing.T) {
	l := New("/data")
	cases := map[string]string{
		l.Archive():   "/data/external/snapshot.jsonl.br",
		l.Document():  "/data/external/snapshot.jsonl",
		l.Parquet():   "/data/external/snapshot.parquet",
		l.Database():  "/data/external/snapshot.duckdb",
		l.Questions(): "/data/public/questions.json",
		l.PriceCSV():  "/data/model_price_icon.csv",
	}
	for got, want := range cases {
		if got != filepath.FromSlash(want) {
			t.Fatalf("path = %q, want %q", got, want)
		}
	}
}

func TestEmptyRootIsCwd(t *testing.T) {
	if got := New("").Document(); got != filepath.FromSlash("external/snapshot.jsonl") {
		t.Fatalf("Document() = %q", got)
	}
}

func TestQuestionFiles(t *testing.T) {
	files := New("r").QuestionFiles()
	if len(files) != 7 {
		t.Fatalf("QuestionFiles len = %d, want 7", len(files))
	}
	if filepath.Base(files[5]) != "tgat_test.jsonl" {
		t.Fatalf("QuestionFiles[5] = %q", files[5])
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("EVALSNAP_ROOT", "/srv/evalsnap")
	if got := FromConfig(config.New()).Root; got != "/srv/evalsnap" {
		t.Fatalf("FromConfig root = %q", got)
	}
	t.Setenv("EVALSNAP_ROOT", "")
	if got := FromConfig(config.New()).Root; got != "." {
		t.Fatalf("FromConfig default root = %q", got)
	}
}
