package module

import (
	"testing"

	"evalsnap/internal/modkit"
	mmodule "evalsnap/internal/modkit/module"
	"evalsnap/internal/platform/config"
	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/layout"
	"evalsnap/internal/platform/store"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"DOCUMENT", "DATABASE", "PRICE_CSV", "QUESTION_FILES"} {
		t.Setenv("EVALSNAP_PREPARE_"+k, "")
	}
}

func TestFromConfig_Defaults(t *testing.T) {
	clearEnv(t)
	lay := layout.New("/srv")
	o := FromConfig(config.New(), lay)
	if o.Document != lay.Document() || o.Database != lay.Database() || o.PriceCSV != lay.PriceCSV() {
		t.Fatalf("FromConfig defaults = %+v", o)
	}
	if len(o.QuestionFiles) != len(lay.QuestionFiles()) {
		t.Fatalf("QuestionFiles = %v", o.QuestionFiles)
	}
}

func TestFromConfig_QuestionFilesCSV(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVALSNAP_PREPARE_QUESTION_FILES", " a.jsonl, ,b.jsonl ")
	o := FromConfig(config.New(), layout.New("."))
	if len(o.QuestionFiles) != 2 || o.QuestionFiles[0] != "a.jsonl" || o.QuestionFiles[1] != "b.jsonl" {
		t.Fatalf("QuestionFiles = %q", o.QuestionFiles)
	}
}

func TestNew_ExposesRunner(t *testing.T) {
	clearEnv(t)
	m, err := New(modkit.Deps{Cfg: config.New(), Layout: layout.New(t.TempDir()), Duck: store.DuckConfig{Threads: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Name() != "prepare" || mmodule.MustPortsOf[Ports](m).Runner == nil {
		t.Fatalf("module not wired: %q", m.Name())
	}
}

func TestNew_RejectsDatabaseOverDocument(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVALSNAP_PREPARE_DOCUMENT", "/tmp/same")
	t.Setenv("EVALSNAP_PREPARE_DATABASE", "/tmp/same")

	_, err := New(modkit.Deps{Cfg: config.New(), Layout: layout.New(".")})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("New(same paths) = %v, want InvalidArgument", err)
	}
}
